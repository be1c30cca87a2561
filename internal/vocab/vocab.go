// Package vocab holds the closed vocabularies used for skill, certification,
// language, and award detection. Every table is a process-wide constant
// lookup structure, initialized once and shared read-only across all
// extraction calls; detection outside these lists never happens, trading
// recall for precision.
package vocab

// Skill dictionary, organized by category. The flattened, deduplicated union
// is what ExtractSkills matches against.
var (
	ProgrammingLanguages = []string{
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
		"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",
	}

	WebTechnologies = []string{
		"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express.js", "Django", "Flask",
		"Spring", "Laravel", "Ruby on Rails", "ASP.NET", "jQuery", "Bootstrap", "Sass", "Less",
		"Webpack", "Next.js", "Gatsby",
	}

	Databases = []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "SQL Server", "Cassandra",
		"DynamoDB", "Neo4j", "Elasticsearch", "InfluxDB", "CouchDB", "MariaDB",
	}

	CloudDevOps = []string{
		"AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes", "Jenkins", "GitLab CI",
		"GitHub Actions", "Terraform", "Ansible", "Chef", "Puppet", "Vagrant", "Nginx", "Apache",
		"CloudFormation", "Helm", "Istio",
	}

	DataScienceML = []string{
		"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn", "Pandas",
		"NumPy", "Matplotlib", "Seaborn", "Jupyter", "Apache Spark", "Hadoop", "Kafka",
		"Airflow", "MLflow", "OpenCV", "NLTK", "spaCy",
	}

	MobileDevelopment = []string{
		"iOS", "Android", "React Native", "Flutter", "Xamarin", "Ionic",
	}

	ToolsFrameworks = []string{
		"Git", "SVN", "JIRA", "Confluence", "Figma", "Sketch", "Photoshop", "Illustrator",
		"Unity", "Unreal Engine", "Selenium", "Jest", "Cypress", "JUnit", "PyTest",
	}

	Methodologies = []string{
		"Agile", "Scrum", "Kanban", "DevOps", "CI/CD", "TDD", "BDD", "Microservices",
		"RESTful APIs", "GraphQL", "SOAP", "OAuth", "JWT",
	}
)

// Certifications are vendor certification names, matched as case-insensitive
// substrings.
var Certifications = []string{
	"AWS Certified", "Microsoft Certified", "Google Cloud", "Cisco", "CompTIA",
	"PMP", "Scrum Master", "Six Sigma", "ITIL", "Salesforce", "Oracle Certified",
}

// SpokenLanguages are the natural languages detected; programming languages
// live in the skill dictionary.
var SpokenLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Chinese", "Japanese", "Korean", "Arabic", "Hindi", "Russian",
}

// AwardKeywords mark lines that describe an award or achievement.
var AwardKeywords = []string{
	"award", "recognition", "achievement", "honor", "prize", "winner",
	"excellence", "outstanding", "top performer", "employee of",
}

// DegreeLevels is the ordinal degree ladder used for education matching.
// Higher rank means a more advanced degree.
var DegreeLevels = map[string]int{
	"high school": 1,
	"diploma":     1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"mba":         4,
	"phd":         5,
	"doctorate":   5,
}

// RoleKeywords mark resume lines that look like job titles, for fuzzy title
// matching.
var RoleKeywords = []string{
	"engineer", "developer", "manager", "analyst", "director", "lead", "senior", "junior",
}
