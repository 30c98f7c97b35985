package main

import "github.com/karolswdev/jira-mcp/cmd"

func main() {
	cmd.Execute()
}
