// Command wishkiosk runs the charity wish kiosk.
package main

import "github.com/berth-dev/wishkiosk/internal/cli"

func main() {
	cli.Execute()
}
