package seeder

func Defaults() []Seeder {
	return []Seeder{
		CareersSeeder{Careers: DefaultCareers},
		ResourcesSeeder{Resources: DefaultResources},
	}
}

type CareerSeed struct {
	Name   string
	Skills []string
}

type ResourceSeed struct {
	Skill string
	Title string
	URL   string
}

var DefaultCareers = []CareerSeed{
	{
		Name:   "ServiceNow Developer",
		Skills: []string{"Troubleshooting", "Creativity", "Scripting", "Configuration", "Integration", "Flexibility"},
	},
	{
		Name:   "Biomedical Equipment Technician",
		Skills: []string{"Troubleshooting", "Schematics", "Hardware", "Organization", "Adaptability", "Magnets"},
	},
	{
		Name:   "Penguin Counter",
		Skills: []string{"Basic Statistics", "Patience", "Attention to Detail", "Resistance to Cold", "Computer"},
	},
}

var DefaultResources = []ResourceSeed{
	{Skill: "Troubleshooting", Title: "Root Cause Analysis Basics", URL: "https://example.com/root-cause-analysis"},
	{Skill: "Creativity", Title: "Creative Problem Solving Toolkit", URL: "https://example.com/creative-problem-solving"},
	{Skill: "Scripting", Title: "Intro to Scripting Concepts", URL: "https://example.com/scripting-intro"},
	{Skill: "Configuration", Title: "Configuration Management Overview", URL: "https://example.com/config-management"},
	{Skill: "Integration", Title: "API Integration Fundamentals", URL: "https://example.com/api-integration"},
	{Skill: "Flexibility", Title: "Working in Agile Environments", URL: "https://example.com/agile-flexibility"},
	{Skill: "Schematics", Title: "Reading Technical Schematics", URL: "https://example.com/schematics"},
	{Skill: "Hardware", Title: "Hardware Fundamentals", URL: "https://example.com/hardware-fundamentals"},
	{Skill: "Organization", Title: "Basic Technical Documentation Skills", URL: "https://example.com/documentation"},
	{Skill: "Adaptability", Title: "Adaptability at Work", URL: "https://example.com/adaptability"},
	{Skill: "Magnets", Title: "MRI Safety and Magnet Awareness", URL: "https://example.com/mri-safety"},
	{Skill: "Basic Statistics", Title: "Statistics for Beginners", URL: "https://example.com/basic-stats"},
	{Skill: "Patience", Title: "Developing Focus and Patience", URL: "https://example.com/patience"},
	{Skill: "Attention to Detail", Title: "Quality Checking Techniques", URL: "https://example.com/attention-to-detail"},
	{Skill: "Resistance to Cold", Title: "Cold Weather Field Readiness", URL: "https://example.com/cold-weather"},
	{Skill: "Computer", Title: "Computer Basics Refresher", URL: "https://example.com/computer-basics"},
}
