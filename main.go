// go-nx reads NoLifeNx-format "PKG4" archives: random access into a node
// tree whose leaves carry scalars, vectors, or references to LZ4 bitmap
// and raw audio blobs.
package main

import "github.com/NoLifeDev/NoLifeNx/cmd"

func main() {
	cmd.Execute()
}
