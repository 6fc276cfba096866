package bank

// sampleQuestions is the bank written on first run when no questions file
// exists. It spans several categories and all difficulty levels so category
// and difficulty filters have something to bite on out of the box.
func sampleQuestions() []Question {
	return []Question{
		{
			Text: "What is the output of 'print(3 * '7')' in Python?",
			Options: []Option{
				{Letter: "A", Text: "21"},
				{Letter: "B", Text: "777"},
				{Letter: "C", Text: "TypeError"},
				{Letter: "D", Text: "37"},
			},
			Answer:     "B",
			Category:   "Python Basics",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "Which of these is NOT a Python built-in data structure?",
			Options: []Option{
				{Letter: "A", Text: "list"},
				{Letter: "B", Text: "tuple"},
				{Letter: "C", Text: "array"},
				{Letter: "D", Text: "dictionary"},
			},
			Answer:     "C",
			Category:   "Python Basics",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "What is the purpose of Python's Global Interpreter Lock?",
			Options: []Option{
				{Letter: "A", Text: "It encrypts bytecode before execution"},
				{Letter: "B", Text: "It lets only one thread execute Python bytecode at a time"},
				{Letter: "C", Text: "It locks modules against circular imports"},
				{Letter: "D", Text: "It prevents the garbage collector from running"},
			},
			Answer:     "B",
			Category:   "Python Basics",
			Difficulty: DifficultyHard,
		},
		{
			Text: "What does the 'zip()' function do in Python?",
			Options: []Option{
				{Letter: "A", Text: "Compresses files"},
				{Letter: "B", Text: "Combines iterables element-wise"},
				{Letter: "C", Text: "Creates a backup of data"},
				{Letter: "D", Text: "Encrypts strings"},
			},
			Answer:     "B",
			Category:   "Python Functions",
			Difficulty: DifficultyMedium,
		},
		{
			Text: "What does Python's 'enumerate()' yield on each iteration?",
			Options: []Option{
				{Letter: "A", Text: "Just the element"},
				{Letter: "B", Text: "The element count so far"},
				{Letter: "C", Text: "An index and the element"},
				{Letter: "D", Text: "A sorted copy of the element"},
			},
			Answer:     "C",
			Category:   "Python Functions",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "Which keyword starts a new goroutine in Go?",
			Options: []Option{
				{Letter: "A", Text: "async"},
				{Letter: "B", Text: "spawn"},
				{Letter: "C", Text: "thread"},
				{Letter: "D", Text: "go"},
			},
			Answer:     "D",
			Category:   "Go Basics",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "What is the zero value of a slice in Go?",
			Options: []Option{
				{Letter: "A", Text: "An empty slice of length 0"},
				{Letter: "B", Text: "nil"},
				{Letter: "C", Text: "A slice with one zero element"},
				{Letter: "D", Text: "It is a compile error to leave a slice unset"},
			},
			Answer:     "B",
			Category:   "Go Basics",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "In what order do deferred calls run when a Go function returns?",
			Options: []Option{
				{Letter: "A", Text: "First deferred, first run"},
				{Letter: "B", Text: "Last deferred, first run"},
				{Letter: "C", Text: "Alphabetical by function name"},
				{Letter: "D", Text: "The order is unspecified"},
			},
			Answer:     "B",
			Category:   "Go Basics",
			Difficulty: DifficultyMedium,
		},
		{
			Text: "What happens when a Go program receives from a nil channel?",
			Options: []Option{
				{Letter: "A", Text: "It panics immediately"},
				{Letter: "B", Text: "It returns the element type's zero value"},
				{Letter: "C", Text: "It blocks forever"},
				{Letter: "D", Text: "It is a compile error"},
			},
			Answer:     "C",
			Category:   "Go Basics",
			Difficulty: DifficultyHard,
		},
		{
			Text: "What is the time complexity of binary search on a sorted array?",
			Options: []Option{
				{Letter: "A", Text: "O(n)"},
				{Letter: "B", Text: "O(log n)"},
				{Letter: "C", Text: "O(n log n)"},
				{Letter: "D", Text: "O(1)"},
			},
			Answer:     "B",
			Category:   "Computer Science",
			Difficulty: DifficultyMedium,
		},
		{
			Text: "What is the decimal number ten written in binary?",
			Options: []Option{
				{Letter: "A", Text: "1001"},
				{Letter: "B", Text: "1100"},
				{Letter: "C", Text: "1010"},
				{Letter: "D", Text: "0110"},
			},
			Answer:     "C",
			Category:   "Computer Science",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "Which of these sorting algorithms is stable?",
			Options: []Option{
				{Letter: "A", Text: "Heapsort"},
				{Letter: "B", Text: "Quicksort"},
				{Letter: "C", Text: "Selection sort"},
				{Letter: "D", Text: "Merge sort"},
			},
			Answer:     "D",
			Category:   "Computer Science",
			Difficulty: DifficultyHard,
		},
		{
			Text: "Which port does HTTPS use by default?",
			Options: []Option{
				{Letter: "A", Text: "80"},
				{Letter: "B", Text: "443"},
				{Letter: "C", Text: "8080"},
				{Letter: "D", Text: "22"},
			},
			Answer:     "B",
			Category:   "Networking",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "What does DNS primarily do?",
			Options: []Option{
				{Letter: "A", Text: "Encrypts traffic between hosts"},
				{Letter: "B", Text: "Routes packets across networks"},
				{Letter: "C", Text: "Resolves names to addresses"},
				{Letter: "D", Text: "Assigns addresses to new hosts"},
			},
			Answer:     "C",
			Category:   "Networking",
			Difficulty: DifficultyEasy,
		},
		{
			Text: "Which HTTP method is defined as idempotent?",
			Options: []Option{
				{Letter: "A", Text: "POST"},
				{Letter: "B", Text: "PUT"},
				{Letter: "C", Text: "PATCH"},
				{Letter: "D", Text: "CONNECT"},
			},
			Answer: "B",
		},
	}
}
