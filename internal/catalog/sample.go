package catalog

// SampleCourses is a small starter catalog used by `catalogctl seed` and by
// the memory-backed dev server.
func SampleCourses() []Course {
	return []Course{
		{
			ID:               "CS490",
			Title:            "Guided Design in Software Engineering",
			Description:      "Capstone course focusing on software engineering principles, team collaboration, and real-world project development.",
			Credits:          3,
			Prerequisites:    "CS280, CS288",
			Department:       "Computer Science",
			Level:            "Senior",
			DifficultyRating: 4.2,
			CareerRelevance:  "Software Development, Project Management, Team Leadership",
			Topics:           "Software Engineering, Project Management, Team Collaboration, System Design",
			SemesterOffered:  "Fall, Spring",
			Professor:        "Various",
			Rating:           4.1,
		},
		{
			ID:               "CS485",
			Title:            "Computer Security",
			Description:      "Introduction to computer security including cryptography, network security, and system vulnerabilities.",
			Credits:          3,
			Prerequisites:    "CS280, CS356",
			Department:       "Computer Science",
			Level:            "Senior",
			DifficultyRating: 4.0,
			CareerRelevance:  "Cybersecurity, Information Security, Security Engineering",
			Topics:           "Cryptography, Network Security, Vulnerability Assessment, Ethical Hacking",
			SemesterOffered:  "Fall, Spring",
			Professor:        "Dr. Smith",
			Rating:           4.3,
		},
		{
			ID:               "CS435",
			Title:            "Advanced Data Structures and Algorithms",
			Description:      "Advanced topics in data structures and algorithm analysis including graph algorithms and optimization techniques.",
			Credits:          3,
			Prerequisites:    "CS280, CS341",
			Department:       "Computer Science",
			Level:            "Senior",
			DifficultyRating: 4.5,
			CareerRelevance:  "Software Engineering, Algorithm Development, Technical Interviews",
			Topics:           "Graph Algorithms, Dynamic Programming, Optimization, Algorithm Analysis",
			SemesterOffered:  "Fall",
			Professor:        "Dr. Johnson",
			Rating:           4.2,
		},
		{
			ID:               "CS375",
			Title:            "Introduction to Machine Learning",
			Description:      "Fundamentals of machine learning including supervised and unsupervised learning, neural networks, and model evaluation.",
			Credits:          3,
			Prerequisites:    "CS280, MATH333",
			Department:       "Computer Science",
			Level:            "Junior",
			DifficultyRating: 4.3,
			CareerRelevance:  "Machine Learning, Data Science, Artificial Intelligence",
			Topics:           "Machine Learning, Neural Networks, Deep Learning, Model Evaluation",
			SemesterOffered:  "Fall, Spring",
			Professor:        "Dr. Chen",
			Rating:           4.4,
		},
		{
			ID:               "CS388",
			Title:            "Internet Applications Development",
			Description:      "Design and development of web applications covering HTML, CSS, JavaScript, backend services, and REST APIs.",
			Credits:          3,
			Prerequisites:    "CS280",
			Department:       "Computer Science",
			Level:            "Junior",
			DifficultyRating: 3.5,
			CareerRelevance:  "Web Development, Full Stack Engineering",
			Topics:           "Web Development, JavaScript, Frontend, Backend, REST",
			SemesterOffered:  "Fall, Spring",
			Professor:        "Dr. Patel",
			Rating:           4.0,
		},
		{
			ID:               "IS375",
			Title:            "Discovering User Needs for UX",
			Description:      "Methods for user research, interviews, and usability studies to ground interface design in real user needs.",
			Credits:          3,
			Prerequisites:    "None",
			Department:       "Information Systems",
			Level:            "Junior",
			DifficultyRating: 3.0,
			CareerRelevance:  "UX Design, User Research, Product Management",
			Topics:           "User Experience, User Research, Usability, Interaction Design",
			SemesterOffered:  "Fall, Spring",
			Professor:        "Dr. Rivera",
			Rating:           4.5,
		},
		{
			ID:               "MET330",
			Title:            "Manual Machining and CNC Routing",
			Description:      "Hands-on machining practice covering manual mills, lathes, welding basics, and CNC routing for prototypes.",
			Credits:          3,
			Prerequisites:    "MET210",
			Department:       "Engineering",
			Level:            "Junior",
			DifficultyRating: 3.2,
			CareerRelevance:  "Manufacturing, Mechanical Engineering, Production",
			Topics:           "Machining, Manufacturing, Prototyping, Production",
			SemesterOffered:  "Spring",
			Professor:        "Prof. Novak",
			Rating:           3.9,
		},
		{
			ID:               "ENE360",
			Title:            "Environmental Monitoring and GIS",
			Description:      "Environmental data collection, geographic information systems, and remote sensing for sustainability assessment.",
			Credits:          3,
			Prerequisites:    "Junior standing",
			Department:       "Engineering",
			Level:            "Junior",
			DifficultyRating: 3.4,
			CareerRelevance:  "Environmental Science, Sustainability, GIS Analysis",
			Topics:           "Environmental Monitoring, GIS, Remote Sensing, Sustainability",
			SemesterOffered:  "Fall",
			Professor:        "Dr. Okafor",
			Rating:           4.1,
		},
		{
			ID:               "PSY201",
			Title:            "Introduction to Cognitive Psychology",
			Description:      "Foundations of human cognition including perception, memory, learning, and decision making.",
			Credits:          3,
			Prerequisites:    "None",
			Department:       "Psychology",
			Level:            "Sophomore",
			DifficultyRating: 2.8,
			CareerRelevance:  "Psychology, Human Factors, Research",
			Topics:           "Psychology, Cognitive Science, Behavior, Memory",
			SemesterOffered:  "Fall, Spring",
			Professor:        "Dr. Laurent",
			Rating:           4.2,
		},
		{
			ID:               "FIN315",
			Title:            "Financial Analysis and Modeling",
			Description:      "Financial statement analysis, valuation, and spreadsheet modeling for investment decisions.",
			Credits:          3,
			Prerequisites:    "Majors only or approval",
			Department:       "Finance",
			Level:            "Junior",
			DifficultyRating: 3.6,
			CareerRelevance:  "Finance, Investment Banking, Financial Analysis",
			Topics:           "Finance, Financial Modeling, Investment, Economics",
			SemesterOffered:  "Spring",
			Professor:        "Dr. Wu",
			Rating:           4.0,
		},
	}
}
