package resume

import (
	"regexp"
	"strings"

	"github.com/avoronov/go_skillmap/internal/structure"
)

// techPatterns catch skills the AI extraction might miss. Each alternation
// has a single capture group.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(python|java|javascript|typescript|c\+\+|c#|cpp|cxx|go|golang|rust|kotlin|swift|php|ruby|scala|r|dart|perl|html|css|scss|sass|less)\b`),
	regexp.MustCompile(`\b(html5?|css3?|scss|sass|less|webpack|babel|eslint|prettier)\b`),
	regexp.MustCompile(`\b(react|vue|angular|django|flask|fastapi|express|spring|laravel|rails|gin|next\.js|nuxt|svelte|remix)\b`),
	regexp.MustCompile(`\b(jest|cypress|mocha|chai|jasmine|karma|selenium|playwright|pytest|unittest|junit)\b`),
	regexp.MustCompile(`\b(mysql|postgresql|postgres|mongodb|mongo|redis|elasticsearch|cassandra|dynamodb|sqlite|oracle|sql server|prisma)\b`),
	regexp.MustCompile(`\b(aws|azure|gcp|google cloud|docker|kubernetes|k8s|jenkins|gitlab|github actions|terraform|ansible|git|vercel|netlify|heroku|railway)\b`),
	regexp.MustCompile(`\b(tensorflow|pytorch|scikit-learn|sklearn|keras|pandas|numpy|opencv|nltk|spacy|slam|ros|robot operating system)\b`),
	regexp.MustCompile(`\b(react native|flutter|ios|android|xamarin|swiftui|kotlin multiplatform)\b`),
	regexp.MustCompile(`\b(graphql|rest|restful|microservices|agile|scrum|oop|object-oriented|functional programming|linux|bash|powershell|zsh|fish)\b`),
	regexp.MustCompile(`\b(git|svn|mercurial|github|gitlab|bitbucket|circleci|travis|github actions|gitlab ci)\b`),
	regexp.MustCompile(`\b(npm|yarn|pnpm|pip|conda|maven|gradle|cmake|make|gulp|grunt)\b`),
}

// individualSkills are checked by whole-word search on top of the grouped
// patterns.
var individualSkills = []string{
	"html", "css", "javascript", "typescript", "python", "java", "c++", "cpp", "c#", "go", "rust",
	"react", "vue", "angular", "node.js", "express", "django", "flask", "spring",
	"mysql", "postgresql", "mongodb", "redis",
	"docker", "kubernetes", "aws", "azure", "gcp",
	"git", "github", "gitlab",
	"jest", "cypress", "mocha", "pytest",
	"vercel", "netlify", "heroku",
	"slam", "ros", "tensorflow", "pytorch",
	"html5", "css3", "scss", "sass",
}

var individualSkillRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(individualSkills))
	for i, s := range individualSkills {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
	return res
}()

// canonicalSkillName fixes the casing of well-known spellings and
// title-cases the rest.
func canonicalSkillName(skill string) string {
	switch strings.ToLower(skill) {
	case "c++", "cpp", "cxx":
		return "C++"
	case "html5":
		return "HTML5"
	case "css3":
		return "CSS3"
	case "node.js", "nodejs":
		return "Node.js"
	}
	if isLower(skill) {
		return structure.TitleCase(skill)
	}
	return skill
}

func isLower(s string) bool {
	return s == strings.ToLower(s) && s != strings.ToUpper(s)
}

// PatternSkills extracts skills by regular expressions alone, as a
// supplement to the AI extraction.
func PatternSkills(resumeText string) []string {
	lower := strings.ToLower(resumeText)

	seen := map[string]bool{}
	var skills []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			skills = append(skills, name)
		}
	}

	for _, re := range techPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			skill := strings.TrimSpace(m[1])
			if len(skill) > 1 {
				add(canonicalSkillName(skill))
			}
		}
	}

	for i, skill := range individualSkills {
		if individualSkillRes[i].MatchString(lower) {
			add(canonicalSkillName(skill))
		}
	}

	return skills
}
