package main

import "github.com/lu0/novel-downloader/cmd"

func main() {
	cmd.Execute()
}
