package catalog

// Node types. A boss node is the checkpoint quiz at the end of a track.
const (
	NodeTypeLesson = "lesson"
	NodeTypeQuiz   = "quiz"
	NodeTypeBoss   = "boss"
)

type Track struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Units       []Unit `yaml:"units" json:"units"`
}

type Unit struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Nodes []Node `yaml:"nodes" json:"nodes"`
}

type Node struct {
	ID            string `yaml:"id" json:"id"`
	Title         string `yaml:"title" json:"title"`
	Description   string `yaml:"description" json:"description"`
	Content       string `yaml:"content" json:"content"`
	Type          string `yaml:"type" json:"type"`
	Difficulty    string `yaml:"difficulty" json:"difficulty"`
	EstimatedTime string `yaml:"estimated_time" json:"estimated_time"`
}

// NodeInfo is a node joined with its position in the tree, the shape the
// node lookup endpoint returns.
type NodeInfo struct {
	Node
	TrackID   string `json:"trackId"`
	UnitID    string `json:"unitId"`
	UnitTitle string `json:"unitTitle"`
}

type Question struct {
	ID            string   `yaml:"id" json:"id"`
	Question      string   `yaml:"question" json:"question"`
	Options       []string `yaml:"options" json:"options"`
	CorrectAnswer string   `yaml:"correct_answer" json:"correct_answer"`
	Explanation   string   `yaml:"explanation" json:"explanation"`
}

// Document is one searchable entry of the flattened catalog, consumed by the
// lexical search in internal/rag. Text is stored lowercased.
type Document struct {
	NodeID  string
	TrackID string
	Title   string
	Text    string
}
