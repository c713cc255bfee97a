package main

import (
	"fmt"
	"github.com/MineSlash/intelhex-editor"
	"os"
)

func main() {
	file, err := os.Open("Sample.hex")
	defer file.Close()
	if err != nil {
		panic(err)
	}

	editor, err := intelhex.NewEditor(file)
	if err != nil {
		panic(err)
	}
	fmt.Printf("start address: %s\n", editor.StartAddress())
	fmt.Printf("length: %d\n", editor.Length())

	data, err := editor.Read(editor.StartAddress(), 0x10)
	if err != nil {
		panic(err)
	}
	fmt.Printf("data: %s\n", data)

	err = editor.Write("0x803000A4", "DEADBEEF")
	if err != nil {
		panic(err)
	}

	out, err := os.Create("Sample_modified.hex")
	defer out.Close()
	if err != nil {
		panic(err)
	}
	err = editor.Save(out, intelhex.DefaultLineLength)
	if err != nil {
		panic(err)
	}
}
