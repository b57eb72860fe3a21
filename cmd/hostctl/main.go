// Command hostctl patches placeholder regions in distributable binaries and
// reports what it can learn about the host before deployment.
package main

func main() {
	execute()
}
