package recommend

// Tables bundles the immutable classifier data the engine scores against.
// The defaults cover the full catalog vocabulary; tests substitute smaller
// tables through WithTables.
type Tables struct {
	// CareerMappings maps a career-goal key to related course vocabulary.
	CareerMappings map[string][]string
	// InterestKeywords expands a coarse interest tag into related vocabulary.
	InterestKeywords map[string][]string
	// TopicSynonyms expand stemmed topic tokens with related terms.
	TopicSynonyms []SynonymRule
	// DepartmentRules drive cross-department expansion. Rules are evaluated
	// independently; every matching rule appends its departments.
	DepartmentRules []DepartmentRule
	// Detectors is the ordered subject-detector list used for interest
	// boosts. Order matters: the first detector whose interest terms match a
	// tag claims that tag.
	Detectors []SubjectDetector
	// TopicBoosts is the ordered direct topic-keyword boost list. The first
	// rule whose topic terms match the query claims the boost.
	TopicBoosts []TopicBoostRule

	AIMLKeywords       []string
	AIMLFalsePositives []string
	// AIMLTitleExclusions hard-excludes courses when any interest mentions
	// AI/ML.
	AIMLTitleExclusions []string

	UXPhrases []string
	// UXScoreExclusions suppresses UX false positives inside the interest
	// scorer; UXBoostExclusions does the same for the final boost pass. The
	// two lists carry different entries and are kept separate.
	UXScoreExclusions []string
	UXBoostExclusions []string

	InterdisciplinaryKeywords []string
}

// SynonymRule expands topic tokens containing Trigger with the Terms
// vocabulary. Triggers are compared against stemmed tokens by substring.
type SynonymRule struct {
	Trigger string
	Terms   []string
}

// DepartmentRule appends Departments when any keyword appears in the
// combined query text.
type DepartmentRule struct {
	Keywords    []string
	Departments []string
}

// SubjectDetector matches an interest tag (InterestTerms, substring) against
// course text (CourseTerms, substring, minus Exclude). UseAIMLPredicate
// switches to the dedicated AI/ML course check. Multiplier scales the boost;
// the non-tech categories carry 3.2 in the reference weights.
type SubjectDetector struct {
	Name             string
	InterestTerms    []string
	CourseTerms      []string
	Exclude          []string
	UseAIMLPredicate bool
	Multiplier       float64
}

// TopicBoostRule adds Boost when the query topics mention TopicTerms and the
// course text mentions CourseTerms.
type TopicBoostRule struct {
	Name        string
	TopicTerms  []string
	CourseTerms []string
	Boost       float64
}

// DefaultTables returns the full classifier configuration.
func DefaultTables() Tables {
	return Tables{
		CareerMappings:            careerMappings,
		InterestKeywords:          interestKeywords,
		TopicSynonyms:             topicSynonyms,
		DepartmentRules:           departmentRules,
		Detectors:                 subjectDetectors,
		TopicBoosts:               topicBoostRules,
		AIMLKeywords:              aimlKeywords,
		AIMLFalsePositives:        aimlFalsePositives,
		AIMLTitleExclusions:       aimlTitleExclusions,
		UXPhrases:                 uxPhrases,
		UXScoreExclusions:         uxScoreExclusions,
		UXBoostExclusions:         uxBoostExclusions,
		InterdisciplinaryKeywords: interdisciplinaryKeywords,
	}
}

var careerMappings = map[string][]string{
	// Technology & computing
	"software_development":    {"software engineering", "programming", "web development", "mobile development", "system design"},
	"data_science":            {"machine learning", "data mining", "statistics", "analytics", "big data", "visualization"},
	"cybersecurity":           {"security", "cryptography", "network security", "ethical hacking", "information security"},
	"ai_ml":                   {"artificial intelligence", "machine learning", "neural networks", "deep learning", "robotics"},
	"web_development":         {"web development", "frontend", "backend", "javascript", "databases", "user interface"},
	"mobile_development":      {"mobile development", "android", "ios", "app development", "user experience"},
	"game_development":        {"game development", "computer graphics", "animation", "game design", "interactive"},
	"network_engineering":     {"networking", "protocols", "distributed systems", "cloud computing", "infrastructure"},
	"database_administration": {"databases", "sql", "data management", "database design", "information systems"},

	// Engineering
	"mechanical_engineering":    {"mechanical", "robotics", "automation", "manufacturing", "design", "materials"},
	"civil_engineering":         {"civil", "construction", "infrastructure", "environmental", "sustainability", "transportation"},
	"biomedical_engineering":    {"biomedical", "medical devices", "healthcare", "biomaterials", "biotechnology"},
	"chemical_engineering":      {"chemical", "process engineering", "biotechnology", "materials", "environmental"},
	"electrical_engineering":    {"electrical", "electronics", "signal processing", "communications", "power systems"},
	"robotics_engineering":      {"robotics", "automation", "mechatronics", "control systems", "artificial intelligence"},
	"environmental_engineering": {"environmental", "sustainability", "green", "renewable", "pollution control"},

	// Business & management
	"entrepreneur":       {"entrepreneurship", "startups", "innovation", "business development", "venture capital"},
	"product_manager":    {"product management", "project management", "innovation", "user experience", "strategy"},
	"project_manager":    {"project management", "leadership", "operations", "planning", "coordination"},
	"business_analyst":   {"business analytics", "data analysis", "decision making", "strategy", "optimization"},
	"consultant":         {"consulting", "strategy", "problem solving", "analysis", "communication"},
	"operations_manager": {"operations", "management", "optimization", "logistics", "efficiency"},

	// Science & research
	"research_scientist":      {"research", "analysis", "methodology", "experimentation", "innovation"},
	"biotechnology":           {"biotechnology", "biology", "genetics", "bioprocessing", "pharmaceuticals"},
	"data_analyst":            {"data analysis", "statistics", "research", "visualization", "modeling"},
	"laboratory_scientist":    {"laboratory", "research", "analysis", "testing", "experimentation"},
	"environmental_scientist": {"environmental", "sustainability", "ecology", "research", "conservation"},

	// Design & creative
	"ux_designer":       {"user experience", "design", "interface", "usability", "human factors"},
	"architect":         {"architecture", "design", "building", "sustainability", "planning"},
	"design_engineer":   {"design", "engineering", "product development", "innovation", "creativity"},
	"creative_director": {"design", "creativity", "visual", "communication", "leadership"},

	// Other / exploring
	"academia":          {"research", "teaching", "analysis", "theory", "methodology"},
	"government":        {"policy", "public service", "analysis", "administration", "planning"},
	"non_profit":        {"social impact", "sustainability", "community", "advocacy", "research"},
	"exploring":         {"interdisciplinary", "diverse", "broad", "exploratory", "foundation"},
	"interdisciplinary": {"interdisciplinary", "cross-functional", "diverse", "integrated", "holistic"},

	"research": {"research", "algorithms", "theory", "computational complexity", "research methods"},
}

var interestKeywords = map[string][]string{
	"cybersecurity": {
		"security", "cyber", "cybersecurity", "encryption", "firewall",
		"network security", "information security", "protection", "vulnerability",
		"authentication", "authorization", "cryptography", "secure", "privacy",
		"risk management", "threat", "defense", "forensics", "penetration",
		"malware", "intrusion", "incident response", "compliance",
	},
	"ux_design": {
		"user experience", "user interface", "ui", "ux", "usability",
		"human computer interaction", "interface design", "user centered",
		"interaction design", "user research", "design thinking", "hci",
		"user needs", "user testing", "prototyping", "wireframe",
		"accessibility", "ergonomics", "human factors", "persona",
	},
	"mechanical_engineering": {
		"mechanical", "engineering design", "manufacturing", "systems design",
		"product design", "cad", "modeling", "simulation", "automation",
		"robotics", "control systems", "mechanics", "materials", "thermal",
		"fluid dynamics", "design optimization", "prototype", "machining",
		"assembly", "tolerance", "quality", "reliability", "testing",
		"production", "process design", "tooling", "fixtures",
	},
	"environmental_science": {
		"environmental", "sustainability", "ecology", "climate", "green",
		"renewable", "conservation", "environmental data", "gis",
		"remote sensing", "environmental monitoring", "pollution",
		"ecosystem", "biodiversity", "carbon", "energy efficiency",
		"water quality", "air quality", "soil", "waste management",
		"environmental impact", "assessment", "geographic", "spatial",
	},
	"architecture": {
		"architecture", "architectural", "building design", "structural",
		"construction", "spatial design", "urban planning", "design",
		"modeling", "visualization", "3d modeling", "cad", "drafting",
		"building systems", "sustainable design", "space planning",
	},
	"web_development": {
		"web", "website", "html", "css", "javascript", "frontend", "backend",
		"react", "node", "express", "http", "api", "rest", "json",
		"responsive", "bootstrap", "jquery", "php", "mysql",
	},
	"data_science": {
		"data science", "data analysis", "statistics", "analytics",
		"visualization", "machine learning", "big data", "pandas",
		"python", "r", "sql", "database", "mining", "warehouse",
	},
	"mobile_development": {
		"mobile", "android", "ios", "app development", "smartphone",
		"tablet", "swift", "kotlin", "react native", "flutter",
	},
	"game_development": {
		"game", "gaming", "unity", "graphics", "3d", "animation",
		"interactive", "simulation", "physics", "rendering",
	},
	// Long-form interest strings submitted verbatim by the intake form.
	"cloud computing devops aws azure infrastructure": {
		"cloud", "aws", "azure", "devops", "infrastructure", "kubernetes",
		"docker", "containerization", "microservices", "serverless",
		"deployment", "ci/cd", "automation", "scalability", "virtualization",
	},
	"mobile development ios android apps": {
		"mobile", "android", "ios", "app development", "smartphone",
		"tablet", "swift", "kotlin", "react native", "flutter",
	},
	"game development unity programming graphics": {
		"game", "gaming", "unity", "graphics", "3d", "animation",
		"interactive", "simulation", "physics", "rendering",
	},
	"electrical engineering electronics circuits power": {
		"electrical", "electronics", "circuits", "power", "signal processing",
		"communications", "control systems", "embedded systems", "vlsi",
		"analog", "digital", "microprocessors", "sensors", "instrumentation",
	},
	"industrial engineering operations supply chain systems": {
		"industrial", "operations", "supply chain", "systems", "optimization",
		"lean", "six sigma", "quality", "productivity", "logistics",
		"ergonomics", "human factors", "process improvement", "efficiency",
	},
	"environmental engineering sustainability green technology": {
		"environmental engineering", "sustainability", "green technology",
		"water treatment", "air pollution", "waste management", "remediation",
		"renewable energy", "environmental impact", "ecology",
	},
	"finance accounting economics financial analysis": {
		"finance", "accounting", "economics", "financial analysis", "investment",
		"banking", "financial modeling", "risk management", "portfolio",
		"budgeting", "cost accounting", "auditing", "taxation",
	},
	"physics engineering physics applied physics": {
		"physics", "engineering physics", "applied physics", "quantum",
		"mechanics", "thermodynamics", "electromagnetism", "optics",
		"nuclear", "computational physics", "materials physics",
	},
	"communication media journalism public relations": {
		"communication", "media", "journalism", "public relations", "writing",
		"reporting", "broadcasting", "digital media", "social media",
		"public speaking", "rhetoric", "mass communication", "storytelling",
	},
	"science technology society ethics innovation policy": {
		"science technology society", "sts", "ethics", "policy", "innovation",
		"social impact", "technology ethics", "digital divide", "sustainability",
		"environmental policy", "science policy", "technology assessment",
		"social responsibility", "public understanding", "science communication",
	},
	"psychology human behavior cognitive science": {
		"psychology", "human behavior", "cognitive science", "mental health",
		"research methods", "social psychology", "behavioral", "perception",
		"learning", "memory", "decision making", "human factors",
	},
	"theatre performing arts drama production": {
		"theatre", "performing arts", "drama", "production", "acting",
		"directing", "stage design", "lighting", "sound", "costume",
		"performance", "creative writing", "dramatic arts",
	},
	"history humanities culture literature": {
		"history", "humanities", "culture", "literature", "philosophy",
		"anthropology", "sociology", "cultural studies", "critical thinking",
		"research", "writing", "analysis", "interpretation",
	},
	"health wellness physical education sports": {
		"health", "wellness", "physical education", "sports", "fitness",
		"nutrition", "exercise science", "kinesiology", "public health",
		"healthcare", "medicine", "therapy", "rehabilitation",
	},
}

// Topic synonym triggers are matched against stemmed tokens by substring;
// the expansion terms are stemmed through the engine's analyzer before the
// overlap is measured, keeping both sides of the comparison consistent.
var topicSynonyms = []SynonymRule{
	{Trigger: "machin", Terms: []string{"artificial", "intelligence", "algorithm", "neural", "deep", "learning"}},
	{Trigger: "ml", Terms: []string{"artificial", "intelligence", "algorithm", "neural", "deep", "learning"}},
	{Trigger: "web", Terms: []string{"html", "css", "javascript", "frontend", "backend", "develop"}},
	{Trigger: "data", Terms: []string{"analysis", "visualization", "statistics", "database", "sql"}},
	{Trigger: "secur", Terms: []string{"cybersecurity", "encryption", "network", "attack", "protect"}},
	{Trigger: "mobil", Terms: []string{"android", "ios", "app", "develop"}},
	{Trigger: "financ", Terms: []string{"money", "investment", "bank", "market", "economics"}},
}

var departmentRules = []DepartmentRule{
	{
		Keywords:    []string{"ai", "artificial intelligence", "machine learning", "neural", "deep learning", "ml", "data science", "algorithm", "generative"},
		Departments: []string{"Computer Science", "Data Science", "Science Technology Society", "Engineering", "Information Technology", "Software and Data Engineering Technology"},
	},
	{
		Keywords:    []string{"web", "website", "frontend", "backend", "javascript", "html", "css", "react", "node", "http", "web development"},
		Departments: []string{"Computer Science", "Information Technology", "Information Systems", "Software and Data Engineering Technology"},
	},
	{
		Keywords:    []string{"data", "analytics", "statistics", "visualization", "database", "sql", "big data", "pandas", "python"},
		Departments: []string{"Computer Science", "Data Science", "Information Systems", "Management Information Systems", "Engineering"},
	},
	{
		Keywords:    []string{"security", "cyber", "encryption", "network security", "firewall", "hacking", "cryptography", "protection"},
		Departments: []string{"Computer Science", "Information Technology", "Information Systems", "Engineering"},
	},
	{
		Keywords:    []string{"mobile", "android", "ios", "app development", "smartphone", "tablet", "swift", "kotlin"},
		Departments: []string{"Computer Science", "Information Technology", "Information Systems", "Software and Data Engineering Technology"},
	},
	{
		Keywords:    []string{"game", "gaming", "unity", "graphics", "3d", "animation", "interactive", "simulation"},
		Departments: []string{"Computer Science", "Information Technology"},
	},
	{
		Keywords:    []string{"business", "management", "entrepreneur", "finance", "marketing", "operations", "accounting", "economics"},
		Departments: []string{"Management", "Management Information Systems", "Economics", "Entrepreneurship"},
	},
	{
		Keywords:    []string{"design", "ux", "ui", "user experience", "user interface", "usability", "interaction", "user centered", "user research", "ergonomics", "human factors"},
		Departments: []string{"Information Systems", "Computer Science", "Information Technology", "Engineering", "Architecture"},
	},
	{
		Keywords:    []string{"mechanical", "engineering design", "manufacturing", "systems design", "product design", "cad", "modeling", "automation", "robotics", "prototype", "machining", "assembly", "tolerance", "quality", "reliability"},
		Departments: []string{"Engineering", "Mechanical Engineering", "Industrial Engineering", "Electrical Engineering", "Computer Science"},
	},
	{
		Keywords:    []string{"environmental", "sustainability", "ecology", "climate", "green", "conservation", "gis", "remote sensing", "pollution", "geographic", "spatial", "water quality", "air quality", "environmental impact"},
		Departments: []string{"Engineering", "Science Technology Society", "Computer Science", "Environmental Engineering", "Civil Engineering"},
	},
	{
		Keywords:    []string{"cybersecurity", "security", "cyber", "encryption", "firewall", "network security", "information security", "cryptography", "forensics", "penetration", "malware", "compliance"},
		Departments: []string{"Computer Science", "Information Technology", "Information Systems", "Engineering", "Management"},
	},
	{
		Keywords:    []string{"analytics", "business intelligence", "data warehouse", "reporting"},
		Departments: []string{"Management Information Systems", "Computer Science", "Data Science", "Management", "Economics"},
	},
	{
		Keywords:    []string{"psychology", "psychological", "behavior", "cognitive", "mental health", "human factors", "social psychology", "behavioral"},
		Departments: []string{"Psychology", "Science Technology Society", "Engineering", "Information Systems"},
	},
	{
		Keywords:    []string{"communication", "media", "journalism", "public relations", "broadcasting", "digital media", "marketing"},
		Departments: []string{"Communication", "Management", "Information Systems", "Computer Science"},
	},
	{
		Keywords:    []string{"history", "humanities", "culture", "literature", "philosophy", "anthropology", "sociology", "cultural studies"},
		Departments: []string{"History", "Literature", "Philosophy", "Science Technology Society", "Communication"},
	},
	{
		Keywords:    []string{"physics", "quantum", "mechanics", "thermodynamics", "electromagnetism", "engineering physics", "applied physics"},
		Departments: []string{"Physics", "Engineering", "Electrical Engineering", "Mechanical Engineering", "Computer Science"},
	},
	{
		Keywords:    []string{"theatre", "theater", "performing arts", "drama", "production", "acting", "performance", "stage"},
		Departments: []string{"Theatre", "Communication", "History", "Literature"},
	},
	{
		Keywords:    []string{"health", "wellness", "physical education", "sports", "fitness", "exercise", "kinesiology", "public health"},
		Departments: []string{"Health & Physical Education", "Biology", "History", "Environmental Science", "Psychology"},
	},
	{
		Keywords:    []string{"science technology society", "sts", "ethics", "policy", "innovation", "social impact", "technology ethics"},
		Departments: []string{"Science Technology Society", "Philosophy", "History", "Communication", "Management"},
	},
	{
		Keywords:    []string{"cloud", "aws", "azure", "devops", "infrastructure", "kubernetes", "docker", "containerization", "deployment"},
		Departments: []string{"Computer Science", "Information Technology", "Information Systems", "Software and Data Engineering Technology"},
	},
	{
		Keywords:    []string{"finance", "accounting", "financial", "economics", "investment", "financial analysis", "financial modeling"},
		Departments: []string{"Finance", "Accounting", "Economics", "Management", "Management Information Systems"},
	},
	{
		Keywords:    []string{"electrical", "electronics", "circuits", "power", "signal processing", "electrical engineering"},
		Departments: []string{"Electrical Engineering", "Engineering", "Computer Science", "Physics"},
	},
	{
		Keywords:    []string{"industrial", "operations", "supply chain", "lean", "six sigma", "industrial engineering", "process improvement"},
		Departments: []string{"Industrial Engineering", "Engineering", "Management", "Management Information Systems"},
	},
}

var aimlKeywords = []string{
	"artificial intelligence", "machine learning", "neural network", "deep learning",
	"computer vision", "natural language processing", "data mining", "robotics",
	"generative ai", "ai", " ml ", "nlp", "reinforcement learning", "introduction to ai",
	"intro to ai", "introduction to machine learning", "intro to machine learning",
	"cs370", "cs375", "cs474", "cs440", "cs482",
	"federated machine learning", "ai for temporal", "pattern recognition",
}

var aimlFalsePositives = []string{
	"machining", "manual", "welding", "routing", "manufacturing", "mechanical",
}

var aimlTitleExclusions = []string{
	"manual machining", "welding", "cnc routing", "physical metrology",
	"remote sensing", "technology society culture",
}

var uxPhrases = []string{
	"user experience", "designing the user experience", "discovering user needs",
	"usability & measuring ux", "user interface design", "interaction design",
	"human computer interaction", "user research", "user needs for ux",
}

var uxScoreExclusions = []string{
	"programming", "linux", "kernel", "system administration", "gpu",
	"cluster programming", "intensive programming", "advanced topics",
}

var uxBoostExclusions = []string{
	"programming", "linux", "kernel", "system administration", "gpu",
	"cluster programming", "security", "cryptography", "networking",
}

var interdisciplinaryKeywords = []string{
	"interdisciplinary", "cross-functional", "diverse", "innovation", "creative",
}

var topicBoostRules = []TopicBoostRule{
	{
		Name:        "web",
		TopicTerms:  []string{"web", "html", "css", "javascript", "website", "frontend", "backend"},
		CourseTerms: []string{"web", "website", "html", "internet applications", "web applications"},
		Boost:       0.4,
	},
	{
		Name:        "ai",
		TopicTerms:  []string{"artificial intelligence", "machine learning", "neural", "ai", "ml"},
		CourseTerms: []string{"artificial intelligence", "machine learning", "ai", "neural", "data science"},
		Boost:       0.4,
	},
	{
		Name:        "data",
		TopicTerms:  []string{"data science", "analytics", "visualization", "statistics"},
		CourseTerms: []string{"data science", "analytics", "data analysis", "statistics"},
		Boost:       0.4,
	},
	{
		Name:        "security",
		TopicTerms:  []string{"security", "cybersecurity", "encryption", "cryptography"},
		CourseTerms: []string{"security", "cybersecurity", "encryption", "cryptography"},
		Boost:       0.4,
	},
}

var subjectDetectors = []SubjectDetector{
	{
		Name:             "ai_ml",
		InterestTerms:    []string{"ai", "ml", "machine"},
		UseAIMLPredicate: true,
		Multiplier:       1.0,
	},
	{
		Name:          "ux_design",
		InterestTerms: []string{"ux", "design"},
		CourseTerms:   uxPhrases,
		Exclude:       uxBoostExclusions,
		Multiplier:    1.0,
	},
	{
		Name:          "cybersecurity",
		InterestTerms: []string{"cyber", "security"},
		CourseTerms:   []string{"cybersecurity", "network security", "information security", "encryption", "cryptography"},
		Multiplier:    1.0,
	},
	{
		Name:          "mechanical",
		InterestTerms: []string{"mechanical"},
		CourseTerms:   []string{"mechanical", "manufacturing", "prototyping", "machining", "production"},
		Multiplier:    1.0,
	},
	{
		Name:          "environmental",
		InterestTerms: []string{"environmental"},
		CourseTerms:   []string{"environmental", "sustainability", "remote sensing", "ecology", "climate"},
		Multiplier:    1.0,
	},
	{
		Name:          "web",
		InterestTerms: []string{"web"},
		CourseTerms:   []string{"web", "website", "html", "css", "javascript", "internet applications"},
		Multiplier:    1.0,
	},
	{
		Name:          "data",
		InterestTerms: []string{"data"},
		CourseTerms:   []string{"data science", "data analytics", "statistics", "visualization"},
		Multiplier:    1.0,
	},
	{
		Name:          "mobile",
		InterestTerms: []string{"mobile"},
		CourseTerms:   []string{"mobile", "android", "ios", "app development"},
		Multiplier:    1.0,
	},
	{
		Name:          "game",
		InterestTerms: []string{"game"},
		CourseTerms:   []string{"game", "gaming", "unity", "graphics", "3d"},
		Multiplier:    1.0,
	},
	{
		Name:          "psychology",
		InterestTerms: []string{"psychology"},
		CourseTerms:   []string{"psychology", "psychological", "behavior", "cognitive", "mental health", "human factors"},
		Multiplier:    3.2,
	},
	{
		Name:          "communication",
		InterestTerms: []string{"communication"},
		CourseTerms:   []string{"communication", "media", "journalism", "public relations", "broadcasting", "digital media"},
		Multiplier:    3.2,
	},
	{
		Name:          "sts",
		InterestTerms: []string{"science technology society", "sts"},
		CourseTerms:   []string{"science technology society", "sts", "ethics", "policy", "innovation", "social impact"},
		Multiplier:    3.2,
	},
	{
		Name:          "physics",
		InterestTerms: []string{"physics"},
		CourseTerms:   []string{"physics", "quantum", "mechanics", "thermodynamics", "electromagnetism"},
		Multiplier:    3.2,
	},
	{
		Name:          "history",
		InterestTerms: []string{"history", "humanities"},
		CourseTerms:   []string{"history", "humanities", "culture", "literature", "philosophy", "anthropology"},
		Multiplier:    3.2,
	},
	{
		Name:          "theatre",
		InterestTerms: []string{"theatre"},
		CourseTerms:   []string{"theatre", "theater", "performing arts", "drama", "production", "acting"},
		Multiplier:    3.2,
	},
	{
		Name:          "health",
		InterestTerms: []string{"health", "wellness"},
		CourseTerms:   []string{"health", "wellness", "physical education", "sports", "fitness", "exercise"},
		Multiplier:    3.2,
	},
	{
		Name:          "cloud_devops",
		InterestTerms: []string{"cloud", "devops"},
		CourseTerms:   []string{"cloud", "aws", "azure", "devops", "infrastructure", "kubernetes"},
		Multiplier:    3.2,
	},
	{
		Name:          "finance",
		InterestTerms: []string{"finance", "accounting"},
		CourseTerms:   []string{"finance", "accounting", "financial", "economics", "investment"},
		Multiplier:    3.2,
	},
	{
		Name:          "electrical",
		InterestTerms: []string{"electrical"},
		CourseTerms:   []string{"electrical", "electronics", "circuits", "power", "signal processing"},
		Multiplier:    3.2,
	},
	{
		Name:          "industrial",
		InterestTerms: []string{"industrial"},
		CourseTerms:   []string{"industrial", "operations", "supply chain", "lean", "six sigma"},
		Multiplier:    3.2,
	},
}
