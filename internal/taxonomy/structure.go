package taxonomy

// TechSkills is the canonical technology table for the role>skill>topic
// restructuring. Declaration order is the tie-break for equal-length term
// matches.
var TechSkills = []TechSkill{
	// Languages
	{"javascript", []string{"javascript", "js", "ecmascript", "es6", "es2015"}},
	{"typescript", []string{"typescript", "ts"}},
	{"python", []string{"python", "py", "django", "flask", "fastapi"}},
	{"java", []string{"java", "spring", "jvm", "maven"}},
	{"go", []string{"go", "golang", "gopher"}},
	{"rust", []string{"rust", "rustlang"}},
	{"cpp", []string{"c++", "cpp", "cplusplus"}},
	{"php", []string{"php", "laravel", "symfony"}},
	{"ruby", []string{"ruby", "rails", "ror"}},
	{"swift", []string{"swift", "swiftui"}},
	{"kotlin", []string{"kotlin", "android"}},
	{"dart", []string{"dart", "flutter"}},
	{"sql", []string{"sql", "postgresql", "mysql", "sqlite"}},
	{"html", []string{"html", "html5"}},
	{"css", []string{"css", "css3", "sass", "scss", "less"}},
	{"bash", []string{"bash", "shell", "sh", "zsh"}},

	// Frameworks & Libraries
	{"react", []string{"react", "reactjs", "jsx"}},
	{"vue", []string{"vue", "vuejs", "nuxt"}},
	{"angular", []string{"angular", "angularjs"}},
	{"nextjs", []string{"nextjs", "next.js"}},
	{"nodejs", []string{"nodejs", "node.js", "express"}},
	{"react-native", []string{"react-native", "reactnative"}},
	{"flutter", []string{"flutter", "dart"}},
	{"spring-boot", []string{"spring boot", "springboot"}},
	{"laravel", []string{"laravel"}},
	{"aspnet", []string{"asp.net", "dotnet", "c#"}},

	// Databases
	{"mongodb", []string{"mongodb", "mongo"}},
	{"redis", []string{"redis"}},
	{"postgresql", []string{"postgresql", "postgres"}},

	// DevOps & Cloud
	{"docker", []string{"docker", "container"}},
	{"kubernetes", []string{"kubernetes", "k8s"}},
	{"aws", []string{"aws", "amazon", "ec2", "s3", "lambda"}},
	{"terraform", []string{"terraform"}},
	{"git", []string{"git", "github"}},
	{"linux", []string{"linux", "unix"}},

	// AI/ML
	{"tensorflow", []string{"tensorflow", "tf"}},
	{"pytorch", []string{"pytorch"}},
	{"machine-learning", []string{"machine learning", "ml", "deep learning"}},
	{"ai", []string{"ai", "artificial intelligence", "llm", "gpt"}},

	// Other
	{"graphql", []string{"graphql"}},
	{"rest", []string{"rest", "restful", "api"}},
	{"blockchain", []string{"blockchain", "crypto", "ethereum"}},
	{"cybersecurity", []string{"security", "cybersecurity", "penetration"}},
}

// TechSkillTerms returns the term list for a canonical key, or nil.
func TechSkillTerms(key string) []string {
	for _, ts := range TechSkills {
		if ts.Key == key {
			return ts.Terms
		}
	}
	return nil
}

// ResourceTypeAnnotations maps source @type@ annotations to output resource
// types. Unknown annotations fall back to "article".
var ResourceTypeAnnotations = map[string]string{
	"official":   "documentation",
	"article":    "article",
	"video":      "video",
	"course":     "course",
	"book":       "book",
	"podcast":    "podcast",
	"opensource": "official",
	"feed":       "article",
}

// StandardRoleTitles maps role-name fragments to standard role titles,
// checked in declaration order.
var StandardRoleTitles = []RoleTitle{
	{"frontend", "Frontend Developer"},
	{"backend", "Backend Developer"},
	{"full stack", "Full Stack Developer"},
	{"full-stack", "Full Stack Developer"},
	{"ai engineer", "AI Engineer"},
	{"ai agents", "AI Agents Developer"},
	{"machine learning", "Machine Learning Engineer"},
	{"data engineer", "Data Engineer"},
	{"data analyst", "Data Analyst"},
	{"devops", "DevOps Engineer"},
	{"cybersecurity", "Cybersecurity Engineer"},
	{"blockchain", "Blockchain Developer"},
	{"game developer", "Game Developer"},
	{"software architect", "Software Architect"},
	{"qa", "QA Engineer"},
	{"product manager", "Product Manager"},
	{"engineering manager", "Engineering Manager"},
	{"ux design", "UX Designer"},
	{"technical writer", "Technical Writer"},
	{"devrel", "DevRel Engineer"},
}
