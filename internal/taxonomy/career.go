package taxonomy

// FallbackCareerPath receives skills no career path scores positively for.
const FallbackCareerPath = "Frontend Developer"

// CareerPaths are the roadmap-title career domains of the second
// restructuring pass.
var CareerPaths = []CareerPath{
	// Web Development
	{"Frontend Developer",
		"Step by step guide to becoming a modern frontend developer in 2025",
		[]string{"frontend", "html", "css", "javascript", "react", "vue", "angular"}},
	{"Backend Developer",
		"Step by step guide to becoming a modern backend developer in 2025",
		[]string{"backend", "server", "api", "database", "nodejs", "python", "java"}},
	{"Full Stack Developer",
		"Step by step guide to becoming a full stack developer",
		[]string{"fullstack", "full-stack", "frontend", "backend"}},
	{"API Design",
		"Step by step guide to learning API design",
		[]string{"api", "rest", "graphql", "design"}},

	// Frameworks
	{"React Developer",
		"Step by step guide to becoming a React developer",
		[]string{"react", "reactjs", "jsx"}},
	{"Vue Developer",
		"Step by step guide to become a Vue Developer in 2025",
		[]string{"vue", "vuejs", "vue.js"}},
	{"Angular Developer",
		"Step by step guide to becoming an Angular developer",
		[]string{"angular", "angularjs", "typescript"}},
	{"Next.js Developer",
		"Step by step guide to becoming a Next.js developer",
		[]string{"nextjs", "next.js", "react"}},

	// Languages
	{"JavaScript Developer",
		"Step by step guide to becoming a JavaScript developer",
		[]string{"javascript", "js", "ecmascript"}},
	{"TypeScript Developer",
		"Step by step guide to becoming a TypeScript developer",
		[]string{"typescript", "ts"}},
	{"Python Developer",
		"Step by step guide to becoming a Python developer",
		[]string{"python", "py", "django", "flask"}},
	{"Java Developer",
		"Step by step guide to becoming a Java developer",
		[]string{"java", "spring", "jvm"}},
	{"Go Developer",
		"Step by step guide to becoming a Go developer",
		[]string{"go", "golang", "gopher"}},
	{"Rust Developer",
		"Step by step guide to becoming a Rust developer",
		[]string{"rust", "rustlang"}},
	{"C++ Developer",
		"Step by step guide to becoming a C++ developer",
		[]string{"cpp", "c++", "cpp"}},
	{"PHP Developer",
		"Step by step guide to becoming a PHP developer",
		[]string{"php", "laravel", "symfony"}},

	// Mobile
	{"Android Developer",
		"Step by step guide to becoming an Android developer",
		[]string{"android", "kotlin", "java", "mobile"}},
	{"iOS Developer",
		"Step by step guide to becoming an iOS developer",
		[]string{"ios", "swift", "swiftui", "mobile"}},
	{"Flutter Developer",
		"Step by step guide to becoming a Flutter developer",
		[]string{"flutter", "dart", "mobile"}},
	{"React Native Developer",
		"Step by step guide to becoming a React Native developer",
		[]string{"react-native", "reactnative", "mobile"}},

	// DevOps & Cloud
	{"DevOps Engineer",
		"Step by step guide to becoming a DevOps engineer",
		[]string{"devops", "ci/cd", "docker", "kubernetes"}},
	{"AWS Cloud Engineer",
		"Step by step guide to learning AWS",
		[]string{"aws", "amazon", "cloud", "ec2", "s3"}},
	{"Kubernetes Engineer",
		"Step by step guide to learning Kubernetes",
		[]string{"kubernetes", "k8s", "container"}},
	{"Docker Engineer",
		"Step by step guide to learning Docker",
		[]string{"docker", "container", "containerization"}},
	{"Terraform Engineer",
		"Step by step guide to learning Terraform",
		[]string{"terraform", "iac", "infrastructure"}},
	{"Linux System Administrator",
		"Step by step guide to learning Linux",
		[]string{"linux", "unix", "system", "administration"}},

	// AI & ML
	{"AI Engineer",
		"Step by step guide to becoming an AI engineer",
		[]string{"ai", "artificial intelligence", "machine learning", "ml"}},
	{"Machine Learning Engineer",
		"Step by step guide to becoming a machine learning engineer",
		[]string{"machine learning", "ml", "tensorflow", "pytorch"}},
	{"AI Data Scientist",
		"Step by step guide to becoming an AI and data scientist",
		[]string{"data science", "ai", "analytics", "statistics"}},
	{"Prompt Engineer",
		"Step by step guide to learning prompt engineering",
		[]string{"prompt", "llm", "gpt", "ai"}},
	{"AI Agents Developer",
		"Step by step guide to learning AI agents",
		[]string{"ai agents", "agents", "llm", "autonomous"}},
	{"MLOps Engineer",
		"Step by step guide to learning MLOps",
		[]string{"mlops", "machine learning ops", "deployment"}},

	// Data
	{"Data Engineer",
		"Step by step guide to becoming a data engineer",
		[]string{"data engineering", "etl", "pipeline", "big data"}},
	{"Data Analyst",
		"Step by step guide to becoming a data analyst",
		[]string{"data analysis", "analytics", "sql", "excel"}},
	{"BI Analyst",
		"Step by step guide to becoming a BI analyst",
		[]string{"business intelligence", "bi", "reporting", "dashboard"}},

	// Databases
	{"PostgreSQL DBA",
		"Step by step guide to becoming a PostgreSQL DBA",
		[]string{"postgresql", "postgres", "database", "dba"}},
	{"SQL Developer",
		"Step by step guide to learning SQL",
		[]string{"sql", "database", "query"}},
	{"MongoDB Developer",
		"Step by step guide to learning MongoDB",
		[]string{"mongodb", "nosql", "database"}},
	{"Redis Developer",
		"Step by step guide to learning Redis",
		[]string{"redis", "cache", "database"}},

	// Security
	{"Cybersecurity Engineer",
		"Step by step guide to becoming a cybersecurity engineer",
		[]string{"cybersecurity", "security", "penetration", "ethical hacking"}},

	// Other
	{"Blockchain Developer",
		"Step by step guide to becoming a blockchain developer",
		[]string{"blockchain", "crypto", "smart contract", "web3"}},
	{"Game Developer",
		"Step by step guide to becoming a game developer",
		[]string{"game", "gaming", "unity", "unreal"}},
	{"Software Architect",
		"Step by step guide to becoming a software architect",
		[]string{"architecture", "design", "system design"}},
	{"System Design Engineer",
		"Step by step guide to learning system design",
		[]string{"system design", "architecture", "scalability"}},
	{"QA Engineer",
		"Step by step guide to becoming a QA engineer",
		[]string{"qa", "testing", "quality assurance", "test"}},
	{"Product Manager",
		"Step by step guide to becoming a product manager",
		[]string{"product", "management", "pm", "strategy"}},
	{"Engineering Manager",
		"Step by step guide to becoming an engineering manager",
		[]string{"engineering management", "leadership", "team"}},
	{"UX Designer",
		"Step by step guide to becoming a UX designer",
		[]string{"ux", "user experience", "design", "ui"}},
	{"Technical Writer",
		"Step by step guide to becoming a technical writer",
		[]string{"technical writing", "documentation", "writing"}},
	{"DevRel Engineer",
		"Step by step guide to becoming a Developer Advocate",
		[]string{"devrel", "developer relations", "advocacy"}},
	{"Computer Science",
		"Step by step guide to learning computer science",
		[]string{"computer science", "cs", "algorithms", "data structures"}},
	{"GraphQL Developer",
		"Step by step guide to learning GraphQL",
		[]string{"graphql", "api", "query"}},
	{"HTML Developer",
		"Step by step guide to learning HTML",
		[]string{"html", "markup", "web"}},
	{"CSS Developer",
		"Step by step guide to learning CSS",
		[]string{"css", "styling", "design"}},
	{"Node.js Developer",
		"Step by step guide to becoming a Node.js developer",
		[]string{"nodejs", "node.js", "server", "javascript"}},
	{"Git and GitHub",
		"Step by step guide to learning Git and GitHub",
		[]string{"git", "github", "version control"}},
	{"Bash/Shell Developer",
		"Step by step guide to learning Bash/Shell",
		[]string{"bash", "shell", "scripting", "linux"}},
	{"Cloudflare Developer",
		"Step by step guide to learning Cloudflare",
		[]string{"cloudflare", "cdn", "cloud"}},
	{"ASP.NET Core Developer",
		"Step by step guide to becoming an ASP.NET Core developer",
		[]string{"asp.net", "dotnet", "c#", "microsoft"}},
	{"Spring Boot Developer",
		"Step by step guide to becoming a Spring Boot developer",
		[]string{"spring boot", "spring", "java"}},
	{"Laravel Developer",
		"Step by step guide to becoming a Laravel developer",
		[]string{"laravel", "php", "framework"}},
	{"Kotlin Developer",
		"Step by step guide to becoming a Kotlin developer",
		[]string{"kotlin", "android", "jvm"}},
	{"Swift Developer",
		"Step by step guide to becoming a Swift developer",
		[]string{"swift", "ios", "swiftui"}},
	{"Design System",
		"Step by step guide to learning design systems",
		[]string{"design system", "ui", "components"}},
	{"Software Design and Architecture",
		"Step by step guide to learning software design and architecture",
		[]string{"design", "architecture", "patterns"}},
	{"AI Red Teaming",
		"Step by step guide to learning AI red teaming",
		[]string{"ai red teaming", "security", "ai safety"}},
}

// CareerPathByName returns the career path with the given name, or nil.
func CareerPathByName(name string) *CareerPath {
	for i := range CareerPaths {
		if CareerPaths[i].Name == name {
			return &CareerPaths[i]
		}
	}
	return nil
}

// CareerCategoryPatterns assigns a category to a merged skill by the first
// matching substring, checked in declaration order. Skills matching nothing
// go to "General".
var CareerCategoryPatterns = []CategoryPattern{
	{"Fundamentals", []string{"basic", "fundamental", "introduction", "getting started", "overview"}},
	{"Core Concepts", []string{"core", "concept", "theory", "principles"}},
	{"Frameworks & Libraries", []string{"framework", "library", "package", "module"}},
	{"Tools & Setup", []string{"tool", "setup", "installation", "configuration", "environment"}},
	{"Advanced Topics", []string{"advanced", "expert", "optimization", "performance"}},
	{"Testing", []string{"test", "testing", "qa", "quality"}},
	{"Deployment", []string{"deploy", "deployment", "production", "hosting"}},
	{"Security", []string{"security", "auth", "authentication", "authorization", "encryption"}},
	{"APIs & Integration", []string{"api", "rest", "graphql", "integration", "endpoint"}},
	{"Database", []string{"database", "db", "sql", "nosql", "query"}},
	{"DevOps", []string{"devops", "ci/cd", "docker", "kubernetes", "terraform"}},
	{"Cloud", []string{"cloud", "aws", "azure", "gcp", "serverless"}},
	{"Mobile", []string{"mobile", "android", "ios", "react native", "flutter"}},
	{"Frontend", []string{"frontend", "ui", "ux", "html", "css", "javascript"}},
	{"Backend", []string{"backend", "server", "nodejs", "python", "java"}},
}
