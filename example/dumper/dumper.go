package main

import (
	"github.com/MineSlash/intelhex-editor"
	"os"
)

func main() {
	file, err := os.Create("output.hex")
	defer file.Close()
	if err != nil {
		panic(err)
	}

	mem := intelhex.NewMemory()
	mem.SetStartAddress(0x80008000)
	mem.SetBinary(0x10008000, []byte{0x01, 0x02, 0x03, 0x04})
	mem.SetBinary(0x20000000, make([]byte, 256))

	err = mem.DumpIntelHex(file, 16)
	if err != nil {
		panic(err)
	}
}
