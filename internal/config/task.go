package config

import "fmt"

type Task string

const (
	TaskVerify  Task = "verify"
	TaskCompare Task = "compare"
	TaskBench   Task = "bench"
	TaskRun     Task = "run"
)

var Tasks = []Task{TaskVerify, TaskCompare, TaskBench, TaskRun}

func ParseTask(s string) (Task, error) {
	for _, t := range Tasks {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown task %q", s)
}
