package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kariyeryolu/backend/internal/platform/logger"
)

//go:embed data/tracks.yaml data/quizzes.yaml
var embeddedData embed.FS

type tracksFile struct {
	Tracks []Track `yaml:"tracks"`
}

type quizzesFile struct {
	Quizzes map[string][]Question `yaml:"quizzes"`
}

// Load builds the catalog from the embedded data files. If dir is non-empty,
// tracks.yaml and quizzes.yaml are read from that directory instead, so
// deployments can ship their own curriculum without rebuilding.
func Load(dir string, log *logger.Logger) (*Catalog, error) {
	loadLog := log.With("component", "catalog")

	rawTracks, rawQuizzes, err := readData(dir)
	if err != nil {
		return nil, err
	}

	var tf tracksFile
	if err := yaml.Unmarshal(rawTracks, &tf); err != nil {
		return nil, fmt.Errorf("parse tracks.yaml: %w", err)
	}
	var qf quizzesFile
	if err := yaml.Unmarshal(rawQuizzes, &qf); err != nil {
		return nil, fmt.Errorf("parse quizzes.yaml: %w", err)
	}

	cat, err := newCatalog(tf.Tracks, qf.Quizzes)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	// Quiz entries may reference nodes that were removed from the tree; warn
	// instead of failing so a stale quiz bank cannot take the server down.
	for nodeID := range qf.Quizzes {
		if _, ok := cat.NodeByID(nodeID); !ok {
			loadLog.Warn("quiz bank references unknown node", "node_id", nodeID)
		}
	}

	loadLog.Info("catalog loaded",
		"tracks", len(cat.tracks),
		"nodes", len(cat.nodes),
		"quizzes", len(cat.quizzes),
		"documents", len(cat.docs),
	)
	return cat, nil
}

func readData(dir string) (tracks, quizzes []byte, err error) {
	if dir == "" {
		tracks, err = embeddedData.ReadFile("data/tracks.yaml")
		if err != nil {
			return nil, nil, fmt.Errorf("read embedded tracks.yaml: %w", err)
		}
		quizzes, err = embeddedData.ReadFile("data/quizzes.yaml")
		if err != nil {
			return nil, nil, fmt.Errorf("read embedded quizzes.yaml: %w", err)
		}
		return tracks, quizzes, nil
	}

	tracks, err = os.ReadFile(filepath.Join(dir, "tracks.yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("read tracks.yaml: %w", err)
	}
	quizzes, err = os.ReadFile(filepath.Join(dir, "quizzes.yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("read quizzes.yaml: %w", err)
	}
	return tracks, quizzes, nil
}
