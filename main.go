// Command taskmd converts AtCoder problem statement pages into Markdown.
package main

import "github.com/gaurav-prasanna/taskmd/cmd"

func main() {
	cmd.Execute()
}
