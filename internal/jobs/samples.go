package jobs

// samplePostings seed the output when neither a database nor a CSV export
// is available, so the file structure can still be validated end to end.
var samplePostings = []struct {
	title       string
	company     string
	description string
}{
	{
		"Machine Learning Engineer",
		"OpenAI",
		"We are looking for a Machine Learning Engineer to build and deploy ML systems at scale. " +
			"Must have experience with Python, PyTorch, TensorFlow, and cloud infrastructure like AWS. " +
			"Knowledge of Docker, Kubernetes, and CI/CD pipelines is required. " +
			"Experience with REST APIs, microservices architecture, and Agile methodologies.",
	},
	{
		"Full Stack Developer",
		"Tech Corp",
		"Seeking a Full Stack Developer with expertise in React, Node.js, TypeScript, and PostgreSQL. " +
			"Must know Docker, AWS, and have experience with GraphQL APIs. " +
			"Familiarity with Agile/Scrum methodologies required.",
	},
	{
		"Data Scientist",
		"Data Analytics Inc",
		"Looking for a Data Scientist proficient in Python, R, Pandas, NumPy, and scikit-learn. " +
			"Experience with SQL databases (PostgreSQL, MySQL), cloud platforms (AWS, GCP), " +
			"and machine learning frameworks (TensorFlow, PyTorch) is essential.",
	},
	{
		"DevOps Engineer",
		"Cloud Services Ltd",
		"DevOps Engineer needed with strong knowledge of Docker, Kubernetes, Jenkins, Terraform, and AWS. " +
			"Experience with Linux, Bash scripting, CI/CD pipelines, and infrastructure as code required.",
	},
	{
		"Frontend Developer",
		"Web Solutions",
		"Frontend Developer position requiring React, TypeScript, JavaScript, HTML, CSS. " +
			"Experience with Next.js, REST APIs, and modern frontend development practices. " +
			"Knowledge of Git and Agile methodologies.",
	},
}

// SamplePostings runs the built-in seed postings through the normal
// pipeline and returns the survivors.
func SamplePostings() []Posting {
	var postings []Posting
	for _, s := range samplePostings {
		if p, ok := buildPosting(s.title, s.company, s.description, ""); ok {
			postings = append(postings, p)
		}
	}
	return postings
}
