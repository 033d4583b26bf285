package main

import "boardquest/cmd/bq/root"

func main() {
	root.Execute()
}
