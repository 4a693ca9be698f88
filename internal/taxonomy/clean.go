package taxonomy

// StopWords are dropped from normalized skill names and keyword sets.
var StopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {}, "to": {},
	"was": {}, "will": {}, "with": {}, "this": {}, "these": {}, "those": {},
}

// SkillSynonyms maps common abbreviations to their expansions.
var SkillSynonyms = []Synonym{
	{"oop", []string{"object-oriented programming", "object oriented programming"}},
	{"fp", []string{"functional programming"}},
	{"api", []string{"application programming interface"}},
	{"rest", []string{"representational state transfer", "restful"}},
	{"graphql", []string{"graph ql", "graph query language"}},
	{"sql", []string{"structured query language"}},
	{"nosql", []string{"not only sql"}},
	{"ci/cd", []string{"continuous integration", "continuous deployment", "continuous delivery"}},
	{"devops", []string{"development operations"}},
	{"ui", []string{"user interface"}},
	{"ux", []string{"user experience"}},
	{"html", []string{"hypertext markup language"}},
	{"css", []string{"cascading style sheets"}},
	{"js", []string{"javascript"}},
	{"ts", []string{"typescript"}},
	{"react", []string{"reactjs", "react.js"}},
	{"vue", []string{"vuejs", "vue.js"}},
	{"angular", []string{"angularjs", "angular.js"}},
	{"node", []string{"nodejs", "node.js"}},
	{"aws", []string{"amazon web services"}},
	{"gcp", []string{"google cloud platform"}},
	{"azure", []string{"microsoft azure"}},
}

// RoleMergers folds spelling variants of a role into one canonical name.
var RoleMergers = []RoleMerger{
	{"ci/cd", []string{"continuous integration", "continuous deployment"}},
	{"devops", []string{"development operations"}},
	{"frontend", []string{"front-end", "front end"}},
	{"backend", []string{"back-end", "back end"}},
	{"fullstack", []string{"full-stack", "full stack"}},
}
