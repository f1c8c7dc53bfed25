package main

import "smart-task-planner.com/smart-task-planner/cmd"

func main() {
	cmd.Execute()
}
