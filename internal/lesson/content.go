package lesson

// Step is one unit of a lesson: present, question, feedback.
type Step struct {
	Title       string
	Intro       string
	Code        string
	Question    string
	Answers     []string // Accepted answers, compared trimmed and lowercased
	Explanation string
}

// Lesson is an ordered, finite sequence of steps plus closing takeaways.
type Lesson struct {
	Name      string
	Title     string
	Steps     []Step
	Takeaways []string
}

// lessons holds the built-in lesson catalog in menu order.
var lessons = []Lesson{
	{
		Name:  "basics",
		Title: "Python Basics",
		Steps: []Step{
			{
				Title: "Output and Printing",
				Intro: "Let's learn about printing output in Python.",
				Code: `
# Basic print statement
print("Hello, World!")

# Print with multiple arguments
print("Hello", "Python", "World")

# Print with special characters
print("Line 1\nLine 2\tTabbed")`,
				Question:    "What character creates a new line in Python strings?",
				Answers:     []string{`\n`, "n", "newline", `\n character`},
				Explanation: `The \n character creates a new line in strings. \t creates a tab, and there are other special characters too!`,
			},
			{
				Title: "Comments and Documentation",
				Intro: "Let's learn about writing comments in Python.",
				Code: `
# This is a single-line comment
print("Hello")  # This is an end-of-line comment

def greet(name):
    '''
    This is a docstring - it documents what a function does
    '''
    return f"Hello, {name}!"`,
				Question:    "What character starts a single-line comment in Python?",
				Answers:     []string{"#", "hash", "pound", "hashtag"},
				Explanation: "The # character starts a single-line comment. Docstrings (triple-quoted strings) document modules, classes, and functions.",
			},
			{
				Title: "Variables and Operations",
				Intro: "Variables hold values; operators combine them.",
				Code: `
x = 10
y = 3
print(x + y)   # 13
print(x ** y)  # 1000
print(x == y)  # False`,
				Question:    "What operator raises a number to a power?",
				Answers:     []string{"**", "double asterisk", "double star", "power operator"},
				Explanation: "The ** operator performs exponentiation: 10 ** 3 is 1000.",
			},
		},
		Takeaways: []string{
			"print() writes output; \\n and \\t are special characters",
			"Comments start with #; docstrings document functions",
			"Variables need no type declaration; ** is exponentiation",
		},
	},
	{
		Name:  "data_types",
		Title: "Data Types",
		Steps: []Step{
			{
				Title: "Integer Division",
				Intro: "Python has two division operators.",
				Code: `
print(17 / 5)   # 3.4  (true division)
print(17 // 5)  # 3    (floor division)
print(17 % 5)   # 2    (remainder)`,
				Question:    "What operator gives you the integer division result (no decimal)?",
				Answers:     []string{"//", "double slash", "floor division"},
				Explanation: "The // operator performs integer division, dropping any decimal part. For example, 17 // 5 = 3 (not 3.4).",
			},
			{
				Title: "Raw Strings",
				Intro: "String prefixes change how literals are read.",
				Code: `
path = "C:\new\table"    # \n and \t are escapes!
raw = r"C:\new\table"    # backslashes kept as-is
print(raw)`,
				Question:    "What prefix creates a 'raw' string where backslashes are treated literally?",
				Answers:     []string{"r", "r prefix", "raw"},
				Explanation: "The 'r' prefix creates a raw string where backslashes are treated as literal characters. Useful for regex patterns!",
			},
			{
				Title: "String Methods",
				Intro: "Strings carry a rich method set.",
				Code: `
messy = "   hello world   "
print(messy.strip())
print(messy.strip().title())
print("-".join(["a", "b", "c"]))`,
				Question:    "What method removes whitespace from both ends of a string?",
				Answers:     []string{"strip", "strip()", ".strip", ".strip()"},
				Explanation: "The strip() method removes whitespace from both ends. Use lstrip() for left only, rstrip() for right only.",
			},
			{
				Title: "Booleans",
				Intro: "Any value can be tested for truth.",
				Code: `
print(bool(0))      # False
print(bool(""))     # False
print(bool([1]))    # True
print(bool("no"))   # True`,
				Question:    "What built-in function converts other types to boolean?",
				Answers:     []string{"bool", "bool()", "bool function"},
				Explanation: "The bool() function converts values to True or False. Empty/zero values become False, others become True.",
			},
		},
		Takeaways: []string{
			"/ is true division, // is floor division, % is remainder",
			"r-prefixed strings keep backslashes literal",
			"strip()/lstrip()/rstrip() trim whitespace",
			"bool() follows Python's truthiness rules",
		},
	},
	{
		Name:  "control_flow",
		Title: "Control Flow",
		Steps: []Step{
			{
				Title: "Conditional Statements",
				Intro: "Branch on conditions with if, elif, and else.",
				Code: `
score = 85
if score >= 90:
    grade = "A"
elif score >= 80:
    grade = "B"
else:
    grade = "C"`,
				Question:    "What keyword is used for alternative conditions between if and else?",
				Answers:     []string{"elif", "elif keyword"},
				Explanation: "The elif keyword (else if) allows you to check multiple conditions in sequence.",
			},
			{
				Title: "Looping with enumerate",
				Intro: "for loops iterate over any sequence.",
				Code: `
colors = ["red", "green", "blue"]
for i, color in enumerate(colors):
    print(i, color)`,
				Question:    "What function gives you both index and value when looping over a sequence?",
				Answers:     []string{"enumerate", "enumerate()", ".enumerate", ".enumerate()"},
				Explanation: "The enumerate() function provides both index and value, useful when you need the position in the sequence.",
			},
			{
				Title: "Loop Control",
				Intro: "break and continue steer loop execution.",
				Code: `
for n in range(10):
    if n == 5:
        break      # stop entirely
    if n % 2 == 0:
        continue   # skip evens
    print(n)`,
				Question:    "What keyword is used to immediately exit a loop?",
				Answers:     []string{"break", "break statement"},
				Explanation: "The break statement immediately exits the loop. Use continue to skip to the next iteration.",
			},
		},
		Takeaways: []string{
			"if/elif/else chains check conditions in order",
			"enumerate() yields (index, value) pairs",
			"break exits a loop, continue skips to the next iteration",
			"A loop's else clause runs only when no break fired",
		},
	},
	{
		Name:  "functions",
		Title: "Functions",
		Steps: []Step{
			{
				Title: "Defining Functions",
				Intro: "Functions package reusable behavior.",
				Code: `
def greet(name):
    """Return a friendly greeting."""
    return f"Hello, {name}!"

print(greet("World"))`,
				Question:    "What keyword is used to define a function in Python?",
				Answers:     []string{"def", "def keyword"},
				Explanation: "The def keyword is used to define functions in Python. It's followed by the function name and parameters.",
			},
			{
				Title: "Keyword Arguments",
				Intro: "Functions can accept flexible argument collections.",
				Code: `
def describe(**attributes):
    for key, value in attributes.items():
        print(f"{key}: {value}")

describe(color="red", size="large")`,
				Question:    "What symbol is used to collect variable keyword arguments into a dictionary?",
				Answers:     []string{"**", "double asterisk", "double star", "**kwargs"},
				Explanation: "The ** symbol collects keyword arguments into a dictionary. A single * collects positional arguments into a tuple.",
			},
			{
				Title: "Lambda Functions",
				Intro: "Small anonymous functions fit on one line.",
				Code: `
double = lambda x: x * 2
pairs = sorted([(2, "b"), (1, "a")], key=lambda p: p[0])
print(double(21))`,
				Question:    "What keyword creates an anonymous single-expression function?",
				Answers:     []string{"lambda", "lambda keyword"},
				Explanation: "The lambda keyword creates anonymous functions limited to a single expression, handy for sort keys and callbacks.",
			},
		},
		Takeaways: []string{
			"def defines a function; docstrings describe it",
			"*args and **kwargs collect extra arguments",
			"lambda creates small anonymous functions",
		},
	},
}

// Lessons returns the lesson catalog in menu order.
func Lessons() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}

// Lookup resolves a lesson by name.
func Lookup(name string) (Lesson, bool) {
	for _, l := range lessons {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}
