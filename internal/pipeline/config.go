package pipeline

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/agents.yaml config/tasks.yaml
var configFS embed.FS

// Agent is a pipeline persona loaded from agents.yaml.
type Agent struct {
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
}

// Task is one pipeline step loaded from tasks.yaml. Description may contain
// {placeholder} slots filled from the job spec at run time.
type Task struct {
	Agent          string `yaml:"agent"`
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
}

// CrewConfig holds the parsed agent and task definitions plus the execution
// order of tasks.
type CrewConfig struct {
	Agents map[string]Agent
	Tasks  map[string]Task
	Order  []string
}

// taskOrder is fixed: research feeds profiling feeds tailoring.
var taskOrder = []string{"research", "profile", "tailor"}

// LoadCrewConfig parses the embedded agent and task definitions.
func LoadCrewConfig() (CrewConfig, error) {
	cfg := CrewConfig{Order: taskOrder}

	rawAgents, err := configFS.ReadFile("config/agents.yaml")
	if err != nil {
		return CrewConfig{}, err
	}
	if err := yaml.Unmarshal(rawAgents, &cfg.Agents); err != nil {
		return CrewConfig{}, fmt.Errorf("parse agents.yaml: %w", err)
	}

	rawTasks, err := configFS.ReadFile("config/tasks.yaml")
	if err != nil {
		return CrewConfig{}, err
	}
	if err := yaml.Unmarshal(rawTasks, &cfg.Tasks); err != nil {
		return CrewConfig{}, fmt.Errorf("parse tasks.yaml: %w", err)
	}

	for _, name := range cfg.Order {
		task, ok := cfg.Tasks[name]
		if !ok {
			return CrewConfig{}, fmt.Errorf("tasks.yaml missing task %q", name)
		}
		if _, ok := cfg.Agents[task.Agent]; !ok {
			return CrewConfig{}, fmt.Errorf("task %q references unknown agent %q", name, task.Agent)
		}
	}
	return cfg, nil
}
