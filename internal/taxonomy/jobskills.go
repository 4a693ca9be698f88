package taxonomy

// JobSkills is the extraction dictionary for job descriptions. Matching
// walks the entries longest-key-first so "react native" wins over "react".
var JobSkills = []JobSkill{
	// Programming Languages
	{"python", "Python", []string{"programming language", "backend scripting", "automation"}, "python"},
	{"java", "Java", []string{"programming language", "object-oriented programming"}, "java"},
	{"javascript", "JavaScript", []string{"programming language", "web development", "frontend"}, "javascript"},
	{"typescript", "TypeScript", []string{"programming language", "web development", "type safety"}, "typescript"},
	{"c++", "C++", []string{"programming language", "systems programming"}, "cpp"},
	{"c#", "C#", []string{"programming language", "object-oriented programming", ".net"}, "csharp"},
	{"go", "Go", []string{"programming language", "backend development", "concurrency"}, "golang"},
	{"rust", "Rust", []string{"programming language", "systems programming", "memory safety"}, "rust"},
	{"kotlin", "Kotlin", []string{"programming language", "android development"}, "android"},
	{"swift", "Swift", []string{"programming language", "ios development"}, "ios"},
	{"php", "PHP", []string{"programming language", "web development", "backend"}, "php"},
	{"ruby", "Ruby", []string{"programming language", "web development"}, "ruby"},
	{"scala", "Scala", []string{"programming language", "functional programming", "big data"}, "scala"},
	{"r", "R", []string{"programming language", "data science", "statistics"}, "data-scientist"},

	// Frontend Frameworks
	{"react", "React", []string{"frontend framework", "ui development"}, "react"},
	{"vue", "Vue.js", []string{"frontend framework", "ui development"}, "vue"},
	{"angular", "Angular", []string{"frontend framework", "ui development"}, "angular"},
	{"next.js", "Next.js", []string{"frontend framework", "react framework", "ssr"}, "react"},
	{"nuxt", "Nuxt.js", []string{"frontend framework", "vue framework", "ssr"}, "vue"},
	{"svelte", "Svelte", []string{"frontend framework", "ui development"}, "frontend"},

	// Backend Frameworks
	{"django", "Django", []string{"backend framework", "python", "web development"}, "python"},
	{"flask", "Flask", []string{"backend framework", "python", "web development"}, "python"},
	{"fastapi", "FastAPI", []string{"backend framework", "python", "api development"}, "python"},
	{"express", "Express.js", []string{"backend framework", "node.js", "api development"}, "nodejs"},
	{"spring", "Spring", []string{"backend framework", "java", "enterprise development"}, "java"},
	{"asp.net", "ASP.NET", []string{"backend framework", "c#", "web development"}, "aspnet-core"},
	{"laravel", "Laravel", []string{"backend framework", "php", "web development"}, "php"},
	{"rails", "Ruby on Rails", []string{"backend framework", "ruby", "web development"}, "ruby"},
	{"gin", "Gin", []string{"backend framework", "go", "api development"}, "golang"},

	// Databases
	{"mysql", "MySQL", []string{"database", "sql", "relational database"}, "backend"},
	{"postgresql", "PostgreSQL", []string{"database", "sql", "relational database"}, "backend"},
	{"mongodb", "MongoDB", []string{"database", "nosql", "document database"}, "backend"},
	{"redis", "Redis", []string{"database", "cache", "in-memory database"}, "backend"},
	{"elasticsearch", "Elasticsearch", []string{"database", "search engine", "analytics"}, "backend"},
	{"cassandra", "Cassandra", []string{"database", "nosql", "distributed database"}, "backend"},
	{"dynamodb", "DynamoDB", []string{"database", "nosql", "aws"}, "aws"},
	{"sqlite", "SQLite", []string{"database", "sql", "embedded database"}, "backend"},
	{"oracle", "Oracle", []string{"database", "sql", "enterprise database"}, "backend"},
	{"sql server", "SQL Server", []string{"database", "sql", "microsoft"}, "backend"},

	// Cloud Platforms
	{"aws", "AWS", []string{"cloud computing", "infrastructure", "deployment"}, "aws"},
	{"azure", "Azure", []string{"cloud computing", "microsoft", "infrastructure"}, "azure"},
	{"gcp", "GCP", []string{"cloud computing", "google", "infrastructure"}, "gcp"},
	{"google cloud", "Google Cloud", []string{"cloud computing", "infrastructure"}, "gcp"},

	// DevOps Tools
	{"docker", "Docker", []string{"containerization", "devops", "deployment"}, "devops"},
	{"kubernetes", "Kubernetes", []string{"container orchestration", "devops", "scalability"}, "devops"},
	{"jenkins", "Jenkins", []string{"ci/cd", "automation", "devops"}, "devops"},
	{"gitlab", "GitLab", []string{"ci/cd", "version control", "devops"}, "devops"},
	{"github actions", "GitHub Actions", []string{"ci/cd", "automation", "devops"}, "devops"},
	{"terraform", "Terraform", []string{"infrastructure as code", "devops", "cloud"}, "devops"},
	{"ansible", "Ansible", []string{"configuration management", "automation", "devops"}, "devops"},
	{"git", "Git", []string{"version control", "source control"}, "devops"},

	// AI/ML
	{"tensorflow", "TensorFlow", []string{"deep learning", "machine learning frameworks"}, "ai-engineer"},
	{"pytorch", "PyTorch", []string{"deep learning", "machine learning frameworks"}, "ai-engineer"},
	{"scikit-learn", "scikit-learn", []string{"machine learning", "python", "data science"}, "data-scientist"},
	{"keras", "Keras", []string{"deep learning", "neural networks"}, "ai-engineer"},
	{"pandas", "Pandas", []string{"data analysis", "python", "data science"}, "data-scientist"},
	{"numpy", "NumPy", []string{"numerical computing", "python", "data science"}, "data-scientist"},
	{"opencv", "OpenCV", []string{"computer vision", "image processing"}, "ai-engineer"},
	{"nltk", "NLTK", []string{"natural language processing", "nlp"}, "ai-engineer"},
	{"spacy", "spaCy", []string{"natural language processing", "nlp"}, "ai-engineer"},

	// Mobile
	{"react native", "React Native", []string{"mobile development", "cross-platform"}, "react-native"},
	{"flutter", "Flutter", []string{"mobile development", "cross-platform", "dart"}, "flutter"},
	{"ios", "iOS", []string{"mobile development", "apple"}, "ios"},
	{"android", "Android", []string{"mobile development", "google"}, "android"},
	{"xamarin", "Xamarin", []string{"mobile development", "cross-platform", "c#"}, "mobile-developer"},

	// Other Tools
	{"graphql", "GraphQL", []string{"api", "query language"}, "backend"},
	{"rest", "REST", []string{"api", "web services"}, "backend"},
	{"microservices", "Microservices", []string{"architecture", "distributed systems"}, "system-design"},
	{"agile", "Agile", []string{"methodology", "project management"}, "software-architect"},
	{"scrum", "Scrum", []string{"methodology", "agile"}, "software-architect"},
	{"oop", "OOP", []string{"programming paradigm", "object-oriented programming"}, "computer-science"},
	{"functional programming", "Functional Programming", []string{"programming paradigm"}, "computer-science"},
	{"linux", "Linux", []string{"operating system", "system administration"}, "devops"},
	{"bash", "Bash", []string{"shell scripting", "automation"}, "devops"},
	{"powershell", "PowerShell", []string{"shell scripting", "automation", "windows"}, "devops"},
}

// ConceptPattern adds a roadmap-level skill when a regex matches the
// description as a whole.
type ConceptPattern struct {
	Pattern string
	Roadmap string
}

// ConceptPatterns catch broad phrases the keyed dictionary misses. Matched
// entries surface as the roadmap slug title-cased with generic topics.
var ConceptPatterns = []ConceptPattern{
	{`\b(?:deep learning|machine learning|ml|ai|artificial intelligence)\b`, "ai-engineer"},
	{`\b(?:data science|data analysis|data engineering)\b`, "data-scientist"},
	{`\b(?:cloud infrastructure|cloud computing|cloud services)\b`, "aws"},
	{`\b(?:container|containerization|orchestration)\b`, "devops"},
}

// PhrasePattern carries a full skill payload for common multi-spelling
// phrases.
type PhrasePattern struct {
	Pattern string
	Name    string
	Topics  []string
	Roadmap string
}

var PhrasePatterns = []PhrasePattern{
	{`\b(?:node\.?js|nodejs)\b`, "Node.js", []string{"backend", "javascript runtime"}, "nodejs"},
	{`\b(?:\.net|dotnet)\b`, ".NET", []string{"framework", "microsoft"}, "aspnet-core"},
	{`\b(?:ci/cd|continuous integration|continuous deployment)\b`, "CI/CD", []string{"devops", "automation"}, "devops"},
	{`\b(?:api|apis|application programming interface)\b`, "API Development", []string{"backend", "web services"}, "backend"},
	{`\b(?:sql|structured query language)\b`, "SQL", []string{"database", "query language"}, "backend"},
}
