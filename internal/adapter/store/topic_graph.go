package store

import "strings"

// DefaultTopicRelations seeds the static topic graph.
var DefaultTopicRelations = map[string][]string{
	"machine learning":    {"deep learning", "neural networks", "data science", "supervised learning", "regression"},
	"deep learning":       {"neural networks", "cnn", "transformers", "pytorch", "tensorflow"},
	"data science":        {"statistics", "pandas", "data analysis", "visualization", "machine learning"},
	"python":              {"django", "flask", "pandas", "numpy", "scripting"},
	"javascript":          {"react", "node", "typescript", "web development", "frontend"},
	"web development":     {"html", "css", "javascript", "react", "backend"},
	"algorithms":          {"data structures", "dynamic programming", "graphs", "sorting", "greedy"},
	"data structures":     {"arrays", "trees", "linked lists", "hash tables", "heaps"},
	"dynamic programming": {"memoization", "recursion", "knapsack", "algorithms"},
	"graphs":              {"bfs", "dfs", "shortest path", "trees"},
	"go":                  {"golang", "concurrency", "microservices", "backend"},
	"databases":           {"sql", "postgresql", "nosql", "indexing"},
	"cloud computing":     {"aws", "docker", "kubernetes", "devops"},
	"cybersecurity":       {"networking", "cryptography", "ethical hacking", "security"},
}

// StaticTopicGraph is a read-only topic → related terms lookup.
type StaticTopicGraph struct {
	relations map[string][]string
}

func NewStaticTopicGraph(relations map[string][]string) *StaticTopicGraph {
	m := make(map[string][]string, len(relations))
	for topic, rel := range relations {
		m[strings.ToLower(strings.TrimSpace(topic))] = append([]string(nil), rel...)
	}
	return &StaticTopicGraph{relations: m}
}

// Related returns nil for unknown topics.
func (g *StaticTopicGraph) Related(topic string) []string {
	return g.relations[strings.ToLower(strings.TrimSpace(topic))]
}
