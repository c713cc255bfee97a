package main

import (
	"fmt"
	"github.com/MineSlash/intelhex-editor"
	"os"
)

func main() {
	file, err := os.Open("example.hex")
	defer file.Close()
	if err != nil {
		panic(err)
	}

	mem := intelhex.NewMemory()
	err = mem.ParseIntelHex(file)
	if err != nil {
		panic(err)
	}
	adr, _ := mem.GetStartAddress()
	fmt.Printf("start address: 0x%08X\n", adr)
	for _, segment := range mem.GetDataSegments() {
		fmt.Printf("%+v\n", segment)
	}
	bytes := mem.ToBinary(0xFFF0, 128, 0x00)
	fmt.Printf("%v\n", bytes)
}
