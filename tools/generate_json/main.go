// This is a tool for generating nested JSON files for manual testing of large trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	keysFlag   = flag.Int("k", 8, "number of keys per object")
	levelsFlag = flag.Int("l", 5, "number of nesting levels")
	outFlag    = flag.String("o", "test.json", "output file name")
)

var n = 0

func main() {
	flag.Parse()
	fmt.Printf("Generating JSON file with %d keys per object and %d levels...\n", *keysFlag, *levelsFlag)
	obj := makeObj(0)
	f, err := os.Create(*outFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(obj); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %s with %d elements.\n", *outFlag, n)
}

func makeObj(level int) map[string]any {
	o := make(map[string]any)
	for i := 0; i < *keysFlag; i++ {
		k := fmt.Sprintf("key_%02d", i)
		switch {
		case level < *levelsFlag && i%3 == 0:
			o[k] = makeObj(level + 1)
		case level < *levelsFlag && i%3 == 1:
			o[k] = makeArr(level + 1)
		default:
			o[k] = makeScalar()
		}
		n++
	}
	return o
}

func makeArr(level int) []any {
	a := make([]any, 0, 3)
	for i := 0; i < 3; i++ {
		if level < *levelsFlag && rand.Intn(2) == 0 {
			a = append(a, makeObj(level+1))
		} else {
			a = append(a, makeScalar())
		}
		n++
	}
	return a
}

func makeScalar() any {
	switch rand.Intn(4) {
	case 0:
		return fmt.Sprintf("text_%04d", rand.Intn(10_000))
	case 1:
		return rand.Float64() * 1000
	case 2:
		return rand.Intn(2) == 0
	}
	return nil
}
