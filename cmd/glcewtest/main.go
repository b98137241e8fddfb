// Command glcewtest reports whether the OpenGL library can be wrangled.
package main

import (
	"fmt"

	"github.com/agiangrant/glcew"
	"github.com/agiangrant/glcew/atexit"
)

func main() {
	if glcew.Init() == glcew.Success {
		fmt.Println("libGL found")
	} else {
		fmt.Println("libGL not found")
	}
	atexit.Exit(0)
}
