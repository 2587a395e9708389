/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokenvars turns design tokens into style-sheet variables.
package main

import (
	"os"

	"bennypowers.dev/tokenvars/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
