package component

import (
	"fmt"
	"sort"
	"strings"

	_ "embed"

	"github.com/ghodss/yaml"
)

//go:embed components.yaml
var databaseYAML []byte

var database map[string]Data

func init() {
	var records []Data
	if err := yaml.Unmarshal(databaseYAML, &records); err != nil {
		panic("component database: " + err.Error())
	}
	database = make(map[string]Data, len(records))
	for _, d := range records {
		database[normalize(d.Name)] = d
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetComponent looks a component up in the embedded database. Lookup is
// case insensitive.
func GetComponent(name string) (d Data, err error) {
	var ok bool
	if d, ok = database[normalize(name)]; !ok {
		err = fmt.Errorf("component %q not in database, available: %v", name, Names())
	}
	return
}

// HasComponent reports whether the database knows the component.
func HasComponent(name string) bool {
	_, ok := database[normalize(name)]
	return ok
}

// Names returns the sorted database component names.
func Names() (names []string) {
	names = make([]string, 0, len(database))
	for _, d := range database {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return
}
