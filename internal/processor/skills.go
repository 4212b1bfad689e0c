package processor

import (
	"sort"
	"strings"
)

// skillDictionary maps a canonical skill name to the lowercase phrases
// that count as a mention of it in resume text.
var skillDictionary = map[string][]string{
	"Python":     {"python"},
	"Java":       {"java "},
	"JavaScript": {"javascript", "js,"},
	"TypeScript": {"typescript"},
	"Go":         {"golang", "go lang"},
	"C++":        {"c++"},
	"C#":         {"c#"},
	"SQL":        {"sql", "mysql", "postgresql", "postgres"},
	"NoSQL":      {"mongodb", "dynamodb", "cassandra"},
	"React":      {"react"},
	"Angular":    {"angular"},
	"Vue":        {"vue.js", "vuejs", "vue "},
	"Node.js":    {"node.js", "nodejs"},
	"AWS":        {"aws", "amazon web services"},
	"Azure":      {"azure"},
	"GCP":        {"gcp", "google cloud"},
	"Docker":     {"docker"},
	"Kubernetes": {"kubernetes", "k8s"},
	"Terraform":  {"terraform"},
	"Linux":      {"linux"},
	"Git":        {"git "},
	"CI/CD":      {"ci/cd", "jenkins", "github actions", "gitlab ci"},
	"REST":       {"rest api", "restful"},
	"GraphQL":    {"graphql"},
	"Kafka":      {"kafka"},
	"Redis":      {"redis"},
	"Spring":     {"spring boot", "spring framework"},
	"Django":     {"django"},
	"Flask":      {"flask"},
	"Excel":      {"excel"},
	"Tableau":    {"tableau"},
	"Power BI":   {"power bi"},
	"Selenium":   {"selenium"},
	"Figma":      {"figma"},
	"Agile":      {"agile", "scrum"},
}

// ExtractSkills scans resume text for dictionary phrases and returns
// the canonical names, sorted for stable output.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	found := make([]string, 0, 16)
	for name, phrases := range skillDictionary {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				found = append(found, name)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}
