package taxonomy

// FallbackUmbrella catches roles no umbrella claims.
const FallbackUmbrella = "Specialized Tools & Frameworks"

// Umbrellas groups roles into broad domains for the first restructuring
// pass. Matching walks the list in order.
var Umbrellas = []Umbrella{
	{
		Name: "Web Development",
		Description: "Core web development technologies, frameworks, and practices " +
			"for building modern web applications and APIs.",
		Roles: []string{
			"Frontend", "Backend", "Full Stack", "API Design", "QA",
			"GraphQL", "Git and GitHub", "HTML", "CSS", "JavaScript",
			"TypeScript", "React", "Vue", "Angular", "Next.js",
			"Node.js", "PHP", "Laravel", "ASP.NET Core", "Spring Boot",
		},
		Categories: []Category{
			{"Frontend Fundamentals", []string{"HTML", "CSS", "JavaScript", "TypeScript", "Accessibility"}},
			{"Frontend Frameworks", []string{"React", "Vue", "Angular", "Next.js"}},
			{"Backend Development", []string{"Backend", "Node.js", "PHP", "Laravel", "ASP.NET Core", "Spring Boot"}},
			{"API & Integration", []string{"API Design", "GraphQL", "REST"}},
			{"Tools & Workflow", []string{"Git and GitHub", "Build Tools", "Testing"}},
		},
		DefaultCategory: "Web Technologies",
	},
	{
		Name: "Mobile Development",
		Description: "Mobile app development platforms, frameworks, and tools " +
			"for iOS and Android applications.",
		Roles: []string{
			"Android", "iOS", "React Native", "Flutter", "Swift UI",
			"Kotlin", "Mobile Apps", "Android Studio", "Xcode",
		},
		Categories: []Category{
			{"Native Development", []string{"Android", "iOS", "Swift UI", "Kotlin"}},
			{"Cross-Platform", []string{"React Native", "Flutter"}},
			{"Mobile Tools", []string{"Android Studio", "Xcode", "Mobile Apps"}},
		},
		DefaultCategory: "Mobile Technologies",
	},
	{
		Name: "Artificial Intelligence & Machine Learning",
		Description: "AI and ML technologies including model development, agent " +
			"systems, MLOps, and AI safety practices.",
		Roles: []string{
			"AI Engineer", "AI Agents", "AI Data Scientist", "AI Red Teaming",
			"Machine Learning", "MLOps", "Prompt Engineering", "Data Science",
		},
		Categories: []Category{
			{"AI Fundamentals", []string{"AI Engineer", "AI Agents", "AI Data Scientist", "Prompt Engineering"}},
			{"Machine Learning", []string{"Machine Learning", "MLOps", "Data Science"}},
			{"AI Safety", []string{"AI Red Teaming"}},
		},
		DefaultCategory: "AI/ML Technologies",
	},
	{
		Name: "Data Engineering & Analytics",
		Description: "Data processing, storage, analysis, and business " +
			"intelligence tools and techniques.",
		Roles: []string{
			"Data Engineer", "Data Analyst", "BI Analyst", "Data Structures",
			"SQL", "PostgreSQL DBA", "MongoDB", "Redis",
		},
		Categories: []Category{
			{"Data Engineering", []string{"Data Engineer", "ETL", "Data Pipelines"}},
			{"Data Analysis", []string{"Data Analyst", "BI Analyst"}},
			{"Data Storage", []string{"SQL", "PostgreSQL", "MongoDB", "Redis"}},
		},
		DefaultCategory: "Data Technologies",
	},
	{
		Name: "DevOps & Cloud",
		Description: "Cloud infrastructure, containerization, orchestration, and " +
			"DevOps practices for scalable systems.",
		Roles: []string{
			"DevOps", "AWS", "Cloudflare", "Terraform", "Docker", "Kubernetes",
			"Linux", "CI/CD", "Shell Bash", "Git and GitHub",
		},
		Categories: []Category{
			{"Cloud Platforms", []string{"AWS", "Cloudflare", "Azure"}},
			{"Infrastructure as Code", []string{"Terraform", "Cloudformation"}},
			{"Containers & Orchestration", []string{"Docker", "Kubernetes"}},
			{"CI/CD", []string{"CI/CD", "Continuous Integration", "Continuous Deployment"}},
			{"System Administration", []string{"Linux", "Shell Bash"}},
		},
		DefaultCategory: "DevOps Tools",
	},
	{
		Name:        "Programming Languages",
		Description: "Core programming languages and their ecosystems for software development.",
		Roles: []string{
			"Python", "Java", "C++", "Go", "Rust", "JavaScript", "TypeScript",
			"PHP", "Ruby", "Swift", "Kotlin", "Dart", "C#", "Shell Bash",
		},
		Categories: []Category{
			{"General Purpose", []string{"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust"}},
			{"Web Languages", []string{"PHP", "Ruby"}},
			{"Mobile Languages", []string{"Swift", "Kotlin", "Dart"}},
			{"Systems Languages", []string{"C++", "C#", "Rust"}},
		},
		DefaultCategory: "Language Features",
	},
	{
		Name: "Computer Science Fundamentals",
		Description: "Fundamental computer science concepts, algorithms, data " +
			"structures, and software architecture principles.",
		Roles: []string{
			"Computer Science", "Data Structures and Algorithms",
			"System Design", "Software Design Architecture", "Software Architect",
			"Code Review", "Datastructures and Algorithms",
		},
		Categories: []Category{
			{"Core Concepts", []string{"Computer Science", "Algorithms", "Data Structures"}},
			{"System Design", []string{"System Design", "Architecture"}},
			{"Software Engineering", []string{"Code Review", "Software Architect"}},
		},
		DefaultCategory: "CS Concepts",
	},
	{
		Name: "Databases",
		Description: "Database systems, query languages, and data storage technologies " +
			"for managing structured and unstructured data.",
		Roles: []string{"PostgreSQL DBA", "MongoDB", "Redis", "SQL", "Databases"},
		Categories: []Category{
			{"Relational Databases", []string{"PostgreSQL", "SQL", "MySQL"}},
			{"NoSQL Databases", []string{"MongoDB", "Redis"}},
		},
		DefaultCategory: "Database Technologies",
	},
	{
		Name:        "Game Development",
		Description: "Game development frameworks, engines, and server-side game architecture.",
		Roles:       []string{"Game Developer", "Server Side Game Developer"},
		Categories: []Category{
			{"Game Engines", []string{"Game Developer", "Game Development"}},
			{"Server Architecture", []string{"Server Side Game Developer"}},
		},
		DefaultCategory: "Game Technologies",
	},
	{
		Name: "Design & UX",
		Description: "User experience design, design systems, and visual design " +
			"principles for digital products.",
		Roles: []string{"UX Design", "Design System"},
		Categories: []Category{
			{"User Experience", []string{"UX Design", "User Research"}},
			{"Design Systems", []string{"Design System"}},
		},
		DefaultCategory: "Design Principles",
	},
	{
		Name: "Blockchain",
		Description: "Blockchain technology, cryptocurrencies, smart contracts, and " +
			"decentralized applications.",
		Roles: []string{"Blockchain"},
		Categories: []Category{
			{"Blockchain Fundamentals", []string{"Blockchain", "Cryptocurrency", "Smart Contracts"}},
		},
		DefaultCategory: "Blockchain Technologies",
	},
	{
		Name: "Cyber Security",
		Description: "Cybersecurity practices, threat detection, security protocols, " +
			"and secure development methodologies.",
		Roles: []string{"Cyber Security"},
		Categories: []Category{
			{"Security Practices", []string{"Cyber Security", "Security", "Threat Detection"}},
		},
		DefaultCategory: "Security Practices",
	},
	{
		Name: "Management & Leadership",
		Description: "Product management, engineering leadership, technical " +
			"communication, and developer relations.",
		Roles: []string{"Product Manager", "Engineering Manager", "Technical Writer", "DevRel"},
		Categories: []Category{
			{"Product Management", []string{"Product Manager"}},
			{"Engineering Leadership", []string{"Engineering Manager"}},
			{"Technical Communication", []string{"Technical Writer", "DevRel"}},
		},
		DefaultCategory: "Management Skills",
	},
	{
		Name: FallbackUmbrella,
		Description: "Specialized development tools, frameworks, and platforms for " +
			"specific use cases.",
		Roles: []string{
			"Flutter", "React", "Vue", "Angular", "Next.js", "React Native",
			"Docker", "Kubernetes", "Terraform", "GraphQL",
		},
		DefaultCategory: "Tools & Frameworks",
	},
}

// UmbrellaByName returns the umbrella with the given name, or nil.
func UmbrellaByName(name string) *Umbrella {
	for i := range Umbrellas {
		if Umbrellas[i].Name == name {
			return &Umbrellas[i]
		}
	}
	return nil
}
