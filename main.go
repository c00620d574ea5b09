// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cligen-cli/cmd/cligen"

func main() {
	cmd.Execute()
}
