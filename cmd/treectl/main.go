// treectl is a command-line driver for the treekit hashtree container.
package main

func main() {
	execute()
}
