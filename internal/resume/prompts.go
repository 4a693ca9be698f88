package resume

import (
	"fmt"
	"strings"

	"github.com/avoronov/go_skillmap/internal/engine"
)

// System prompts for the four analysis calls.
const (
	extractionSystem = "You are a technical skill extraction assistant. Your job is to extract EVERY technical skill, tool, framework, language, platform, and concept from resumes. Be extremely thorough. Always return a comma-separated list of skills with no explanations or formatting."

	matchingSystem = "You are a technical skill matching expert. Match skills comprehensively using semantic understanding, not keyword matching. Return only valid JSON."

	proficiencySystem = "You are a technical recruiter analyzing resume proficiency using comprehensive logic. Consider experience depth, job requirements alignment, and context. Return only valid JSON with skill names and proficiency scores (1-5, can use decimals)."

	expansionSystem = "You are a technical recruiter expanding job descriptions to clarify experience requirements. Provide detailed, specific information about skill proficiency expectations."

	jobMatchSystem = "You are a technical recruiter analyzing skill matches. CRITICAL: Use the FULL 0-100% range with nuanced scores (12%, 34%, 67%, 84%, etc.). AVOID binary clustering (0%, 50%, 100%). Consider names, keywords, topics, proficiency comparison, partial matches, and alignment with expanded job description. Return only valid JSON with precise percentage scores distributed across the full range."
)

// Per-call tuning. Temperatures and token budgets are deliberately uneven:
// extraction needs breadth, job matching needs room for reasoning.
const (
	extractionTemp, extractionMaxTokens   = 0.5, 2000
	matchingTemp, matchingMaxTokens       = 0.5, 3000
	proficiencyTemp, proficiencyMaxTokens = 0.5, 2500
	expansionTemp, expansionMaxTokens     = 0.5, 1000
	jobMatchTemp, jobMatchMaxTokens       = 0.5, 5000
)

// Truncation limits applied to text embedded in prompts.
const (
	resumePromptLimit      = 20000
	resumeContextLimit     = 10000
	descriptionPromptLimit = 3000
)

func buildExtractionPrompt(cat *Catalog, resumeText string) string {
	samples := cat.PromptSamples()

	keywords := cat.Keywords
	if len(keywords) > 150 {
		keywords = keywords[:150]
	}
	roles := cat.Roles
	if len(roles) > 50 {
		roles = roles[:50]
	}

	return fmt.Sprintf(`You are extracting ALL technical skills from a resume. Be extremely thorough and comprehensive.

Extract EVERY technical skill, technology, tool, framework, library, platform, concept, and methodology mentioned in this resume.

REFERENCE SKILLS FROM ROADMAP DATABASE (these are examples - extract ALL skills mentioned, not just these):
%s

ALSO LOOK FOR THESE KEYWORDS AND VARIATIONS:
%s

ROLES TO CONSIDER (skills may be associated with these roles):
%s

CATEGORIES TO EXTRACT FROM:

PROGRAMMING LANGUAGES: Python, Java, JavaScript, TypeScript, C++, C#, Go, Rust, Kotlin, Swift, PHP, Ruby, Scala, R, Dart, HTML, HTML5, CSS, CSS3, SCSS, SASS, SQL, etc.

FRAMEWORKS & LIBRARIES: React, Vue, Angular, Django, Flask, FastAPI, Express, Spring, Next.js, Nuxt, Svelte, ASP.NET, Laravel, Rails, Gin, etc.

TOOLS & PLATFORMS: Docker, Kubernetes, AWS, Azure, GCP, Vercel, Netlify, Heroku, Railway, Git, GitHub, GitLab, Jenkins, Terraform, Ansible, CircleCI, etc.

DATABASES: MySQL, PostgreSQL, MongoDB, Redis, Elasticsearch, Cassandra, DynamoDB, SQLite, Oracle, SQL Server, CosmosDB, CouchDB, etc.

TESTING FRAMEWORKS: Jest, Cypress, Mocha, Chai, Jasmine, Karma, Selenium, Playwright, pytest, unittest, JUnit, etc.

AI/ML/ROBOTICS: TensorFlow, PyTorch, scikit-learn, Keras, Pandas, NumPy, OpenCV, NLTK, spaCy, SLAM, ROS, Machine Learning, Deep Learning, etc.

BUILD TOOLS: npm, yarn, pnpm, pip, conda, webpack, babel, eslint, prettier, Maven, Gradle, CMake, etc.

CONCEPTS & METHODOLOGIES: REST, GraphQL, Microservices, Agile, Scrum, OOP, Functional Programming, CI/CD, DevOps, etc.

CYBERSECURITY: Security concepts, encryption, authentication, authorization, etc.

SPECIALIZED TOPICS: Any technical topics, concepts, or domain-specific knowledge mentioned.

CRITICAL INSTRUCTIONS:
- Extract skills even if mentioned only once, briefly, or in different contexts
- Include HTML, CSS, C++, and other fundamental technologies
- Include deployment platforms like Vercel, Netlify, Heroku, Railway
- Include testing tools like Jest, Cypress, Selenium, Playwright
- Include specialized terms like SLAM (Simultaneous Localization and Mapping), ROS (Robot Operating System)
- Include version control: Git, GitHub, GitLab, Bitbucket
- Include cloud services: AWS, Azure, GCP and their specific services
- Include databases: SQL and NoSQL varieties
- Include build tools and package managers
- Include any technology, tool, or concept that appears technical
- Be comprehensive - it's better to include too many than miss skills
- Match skills to the roadmap database when possible, but also include skills not in the roadmap

Return ONLY a comma-separated list of skill names. No explanations, no categories, no formatting - just skills separated by commas.

Resume text:
%s`,
		strings.Join(samples, ", "),
		strings.Join(keywords, ", "),
		strings.Join(roles, ", "),
		engine.Truncate(resumeText, resumePromptLimit))
}

func buildMatchingPrompt(cat *Catalog, extracted []string, resumeText string) string {
	skills := cat.Skills
	if len(skills) > 150 {
		skills = skills[:150]
	}
	roles := cat.Roles
	if len(roles) > 30 {
		roles = roles[:30]
	}
	if len(extracted) > 100 {
		extracted = extracted[:100]
	}

	return fmt.Sprintf(`You are a technical skill matching expert. Your task is to comprehensively match skills extracted from a resume to skills in the roadmap database.

IMPORTANT: Do NOT use simple keyword matching. Instead, use comprehensive semantic understanding:
- Consider skill variations, synonyms, and related technologies
- Match based on meaning and context, not just exact names
- Consider that "React" matches "React.js", "ReactJS", "React Native" concepts
- Consider that "Python" matches "Python 3", "Python programming", "Python development"
- Consider related frameworks and tools (e.g., "Django" is related to "Python")
- Consider domain knowledge (e.g., "Machine Learning" relates to "AI", "ML", "Deep Learning")
- Match skills even if they're mentioned in different contexts or with different terminology

EXTRACTED SKILLS FROM RESUME:
%s

ROADMAP SKILLS DATABASE (sample - comprehensive matching should consider all skills):
%s

ROADMAP ROLES (skills may be associated with these roles):
%s

For each extracted skill, find the BEST matching skill(s) from the roadmap database. Consider:
1. Exact matches (same name)
2. Semantic matches (same meaning, different name)
3. Related matches (closely related technologies)
4. Contextual matches (skills used in similar contexts)

Return a JSON object with this structure:
{
  "matched_skills": [
    {
      "extracted_skill": "React",
      "roadmap_skill": "React",
      "match_confidence": "exact",
      "keywords": ["react", "reactjs", "react.js"],
      "reasoning": "Exact match - React is a core frontend framework"
    }
  ]
}

Resume Context (first %d chars for skill context):
%s

Return ONLY valid JSON, no explanations. Include all extracted skills that have reasonable matches in the roadmap.`,
		strings.Join(extracted, ", "),
		strings.Join(skills, ", "),
		strings.Join(roles, ", "),
		resumeContextLimit,
		engine.Truncate(resumeText, resumeContextLimit))
}

func buildProficiencyPrompt(extracted []string, resumeText, jobDescription string, jobSkillNames []string) string {
	if len(extracted) > 50 {
		extracted = extracted[:50]
	}

	jobContext := ""
	if jobDescription != "" && len(jobSkillNames) > 0 {
		names := jobSkillNames
		if len(names) > 15 {
			names = names[:15]
		}
		jobContext = fmt.Sprintf(`

JOB REQUIREMENTS CONTEXT:
Job Description: %s
Required Skills: %s

When rating proficiency, consider how well the candidate's experience matches the job requirements. A skill that is critical for the job should be rated higher if the candidate has strong experience, and lower if they lack relevant experience.`,
			jobDescription, strings.Join(names, ", "))
	}

	return fmt.Sprintf(`You are a technical recruiter analyzing resume proficiency. Rate each skill (1-5) using COMPREHENSIVE analysis based on the candidate's experience and the expanded job description requirements.

CRITICAL: Use comprehensive logic, not rule-based scoring. Consider:
- Depth and breadth of experience with the skill
- Complexity of projects where the skill was used
- Years of experience and progression
- How well the candidate's experience aligns with the job's specific requirements
- Quality indicators (leadership, mentoring, architecture decisions, etc.)
- Context from the expanded job description about what proficiency level is needed

Proficiency Scale (use full range, not binary):
1 = Mentioned only briefly, no evidence of experience, or insufficient for job requirements
2 = Basic familiarity, mentioned in passing or education, minimal practical experience
3 = Some experience, used in projects or work, meets basic job requirements
4 = Strong experience, significant usage and understanding, exceeds basic requirements
5 = Expert level, deep expertise, leadership, or extensive experience, exceeds job requirements
%s

PROFICIENCY COMPARISON LOGIC (comprehensive AI analysis):
When job context is provided, use comprehensive analysis:
- Read the expanded job description carefully to understand required proficiency levels
- Compare candidate's actual experience (from resume) with job requirements
- Consider: Does the candidate have the depth needed? The breadth? The right context?
- Use nuanced scoring: 2.5, 3.5, 4.5 are valid if the skill is between levels

Return a JSON object with skill names as keys and proficiency scores (1-5, can use decimals like 2.5, 3.5) as values.
Example: {"Python": 4.5, "React": 3, "Docker": 2.5}

Skills to evaluate: %s

Resume text (comprehensive context):
%s

Return ONLY valid JSON, no explanations. Use comprehensive analysis, not simple rules.`,
		jobContext,
		strings.Join(extracted, ", "),
		engine.Truncate(resumeText, resumePromptLimit))
}

func buildExpansionPrompt(jobTitle, companyName, jobDescription string, skillNames []string) string {
	if len(skillNames) > 20 {
		skillNames = skillNames[:20]
	}

	return fmt.Sprintf(`You are a technical recruiter writing a detailed job description. Expand and elaborate on the following job posting to provide more substance about:
- Required experience levels for each skill
- Specific use cases and contexts where skills are needed
- Years of experience expected
- Project complexity and scale
- Team collaboration and leadership aspects
- Technical depth and expertise required

Job Title: %s
Company: %s

Original Description:
%s

Required Skills: %s

Expand the description to be more specific about:
1. What level of proficiency is needed for each skill (junior/mid/senior)
2. What kind of projects or work will use these skills
3. How many years of experience is expected
4. What specific tasks or responsibilities require these skills
5. Any advanced or specialized knowledge needed

Return an expanded job description (300-500 words) that provides more detail about experience requirements and skill expectations. Be specific and realistic.`,
		jobTitle, companyName, engine.Truncate(jobDescription, descriptionPromptLimit), strings.Join(skillNames, ", "))
}

func buildJobMatchPrompt(expandedDescription, jobSkills, resumeSkills, resumeText string) string {
	return fmt.Sprintf(`You are a technical recruiter comparing a candidate's resume to a job requirement.

Analyze how well the candidate's skills match the job requirements. Consider:
1. Skill names (exact and similar matches)
2. Keywords and related terms
3. Topics and concepts
4. Proficiency levels (a skill with proficiency 5/5 is better than 2/5)
5. Context and experience depth from the resume
6. How well the candidate's experience matches the EXPANDED job description requirements
7. Partial matches for related skills (e.g., "React" when job needs "React + Redux" = 60-70%%)

CRITICAL INSTRUCTIONS FOR SCORING (MANDATORY):
- Use the FULL 0-100%% range, NOT binary (0%%, 50%%, 100%%)
- AVOID clustering around 0%%, 50%%, 100%% - these are red flags
- Provide nuanced scores distributed across the range: 12%%, 23%%, 34%%, 47%%, 56%%, 67%%, 73%%, 78%%, 84%%, 91%%, 93%%, etc.
- Assign partial credit for related or partially covered skills
- Compare required vs actual proficiency to determine match
- Consider skill depth, context alignment, and relevance
- Most realistic scores should be between 10-90%% (avoid extremes unless truly warranted)
- DO NOT round to nearest 10%% or 25%% - use precise percentages

PROFICIENCY COMPARISON LOGIC:
For each job skill, compare the required proficiency level (from the expanded
job description) with the candidate's actual proficiency and derive the match
percentage from that comparison.

For EACH job skill, provide:
- A match percentage (0-100%%) indicating how well the candidate matches this requirement
- Reasoning based on skills, keywords, topics, proficiency comparison, and how their experience aligns with the job description
- Matched resume skills that contributed to this match

Return a JSON object with this structure:
{
  "job_skills": [
    {
      "skill_name": "Python",
      "match_percentage": 78.5,
      "matched_resume_skills": ["Python", "Django"],
      "reasoning": "Candidate has Python with proficiency 4/5 and relevant backend experience matching the requirement."
    }
  ],
  "overall_match_percentage": 72.3
}

EXPANDED JOB DESCRIPTION (provides detailed requirements):
%s

Job Skills List:
%s

Candidate Skills (with proficiency):
%s

Resume Context (comprehensive - first %d chars):
%s

IMPORTANT:
- When calculating match percentages, heavily weight how well the candidate's experience (from resume context) aligns with the specific requirements mentioned in the EXPANDED JOB DESCRIPTION
- A candidate with high proficiency in a skill that matches the job's specific use cases should score higher than someone with the same skill but different experience context
- Use the FULL percentage range - avoid binary thinking
- Provide detailed reasoning that explains the specific percentage score

Return ONLY valid JSON, no explanations.`,
		expandedDescription, jobSkills, resumeSkills, resumePromptLimit, engine.Truncate(resumeText, resumePromptLimit))
}
