package seed

import "strings"

var jobTitles = []string{
	"Senior Frontend Engineer",
	"Backend Developer",
	"Full Stack Engineer",
	"DevOps Engineer",
	"Product Manager",
	"UX Designer",
	"Data Scientist",
	"ML Engineer",
	"QA Engineer",
	"Technical Writer",
	"Engineering Manager",
	"Solutions Architect",
	"Security Engineer",
	"Mobile Developer",
	"Cloud Architect",
	"Site Reliability Engineer",
	"Business Analyst",
	"Scrum Master",
	"UI/UX Designer",
	"Marketing Manager",
	"Sales Engineer",
	"Customer Success Manager",
	"HR Manager",
	"Finance Analyst",
	"Operations Manager",
}

var jobTags = []string{
	"Remote", "Onsite", "Hybrid", "Full-time", "Part-time",
	"Contract", "Urgent", "Senior", "Junior", "Mid-level",
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Barbara", "David", "Elizabeth", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
	"Matthew", "Margaret", "Anthony", "Betty", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
}

// bankQuestion is one graded practice question of a role bank.
type bankQuestion struct {
	Question string
	Options  []string
	Answer   string
}

// roleBanks holds the role-specific questions injected at the top of each
// seeded assessment's technical section.
var roleBanks = map[string][]bankQuestion{
	"Frontend": {
		{"Which hook is used for memoizing values?", []string{"useMemo", "useEffect", "useRef", "useCallback"}, "useMemo"},
		{"Which CSS layout is best for 2D grids?", []string{"Float", "Flexbox", "Grid", "Table"}, "Grid"},
		{"What does key prop help with in React lists?", []string{"Styling", "Performance/reconciliation", "Routing", "Accessibility"}, "Performance/reconciliation"},
	},
	"Backend": {
		{"Which HTTP status means Unprocessable Entity?", []string{"400", "401", "403", "422"}, "422"},
		{"ACID: what does I stand for?", []string{"Isolation", "Iteration", "Integrity", "Indirection"}, "Isolation"},
		{"Best way to store passwords?", []string{"Plain text", "Symmetric encryption", "Salted hash (bcrypt/argon2)", "Base64"}, "Salted hash (bcrypt/argon2)"},
	},
	"Data": {
		{"Which algorithm reduces dimensionality?", []string{"KNN", "PCA", "Naive Bayes", "Apriori"}, "PCA"},
		{"What is overfitting?", []string{"High bias", "High variance", "Low variance", "Perfect generalization"}, "High variance"},
		{"Which metric for imbalanced classes?", []string{"Accuracy", "Precision/Recall", "MAE", "R²"}, "Precision/Recall"},
	},
	"DevOps": {
		{"Blue/Green deployment benefit?", []string{"Zero-downtime releases", "Cheaper servers", "No tests required", "Manual rollbacks only"}, "Zero-downtime releases"},
		{"IaC tool?", []string{"Webpack", "Terraform", "Express", "Jest"}, "Terraform"},
		{"Container orchestrator?", []string{"Kubernetes", "Selenium", "Nginx", "Electron"}, "Kubernetes"},
	},
	"Design": {
		{"Primary goal of usability testing?", []string{"Visual appeal", "Identify user pain points", "Code coverage", "SEO rank"}, "Identify user pain points"},
		{"What is WCAG?", []string{"Accessibility guidelines", "Animation library", "Design tool", "Layout engine"}, "Accessibility guidelines"},
		{"What is a persona?", []string{"A real customer", "Fictional archetype user", "Stakeholder", "Developer"}, "Fictional archetype user"},
	},
	"PM": {
		{"Backlog prioritization technique?", []string{"MoSCoW", "DFS", "A*", "LRU"}, "MoSCoW"},
		{"What is a KPI?", []string{"Key Performance Indicator", "Known Product Issue", "Kanban Planning Item", "Key Process Interaction"}, "Key Performance Indicator"},
		{"Which framework is flow-based?", []string{"Scrum", "Kanban", "Waterfall", "PERT"}, "Kanban"},
	},
}

// generalTechnical pads every seeded technical section after the role bank.
var generalTechnical = []bankQuestion{
	{"Which HTTP method is idempotent?", []string{"GET", "POST", "PATCH", "DELETE"}, "GET"},
	{"What is the time complexity of a binary search?", []string{"O(1)", "O(log n)", "O(n)", "O(n²)"}, "O(log n)"},
	{"What is a hash collision?", []string{"When two different keys hash to the same value", "When a hash function fails", "When memory runs out", "When data is corrupted"}, "When two different keys hash to the same value"},
	{"What is the difference between a stack and a queue?", []string{"Stack is LIFO, Queue is FIFO", "Stack is slower than Queue", "Queue uses more memory", "There is no difference"}, "Stack is LIFO, Queue is FIFO"},
	{"What is memoization?", []string{"Caching the results of expensive function calls", "Writing documentation", "Organizing code into modules", "Testing code"}, "Caching the results of expensive function calls"},
}

// behavioral questions form the second seeded section.
var behavioral = []bankQuestion{
	{"How do you handle conflicts in a team?", []string{"Address issues directly and professionally", "Avoid confrontation", "Escalate to management immediately", "Wait for others to resolve it"}, "Address issues directly and professionally"},
	{"How do you prioritize your tasks?", []string{"Use importance and urgency matrix", "Work on whatever comes first", "Ask others what to do", "Focus on easy tasks first"}, "Use importance and urgency matrix"},
	{"How do you handle tight deadlines?", []string{"Break down tasks and communicate progress", "Work overtime without telling anyone", "Cut corners to meet deadline", "Ask for extension immediately"}, "Break down tasks and communicate progress"},
	{"How do you handle criticism?", []string{"Take it constructively and improve", "Defend against all criticism", "Ignore it completely", "Get upset and defensive"}, "Take it constructively and improve"},
}

// detectRole maps a job title to the closest role bank; unmatched titles
// fall back to Frontend.
func detectRole(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "front") || strings.Contains(t, "ui"):
		return "Frontend"
	case strings.Contains(t, "back") || strings.Contains(t, "server") || strings.Contains(t, "api"):
		return "Backend"
	case strings.Contains(t, "data") || strings.Contains(t, "ml"):
		return "Data"
	case strings.Contains(t, "devops") || strings.Contains(t, "sre") || strings.Contains(t, "cloud"):
		return "DevOps"
	case strings.Contains(t, "design") || strings.Contains(t, "ux"):
		return "Design"
	case strings.Contains(t, "product") || strings.Contains(t, "pm"):
		return "PM"
	default:
		return "Frontend"
	}
}
