package strmatch_test

import (
	"fmt"

	"github.com/npillmayer/strmatch"
)

func ExampleFindAll() {
	r, err := strmatch.FindAll("ABCDEFGHIDEFJKL", strmatch.FilterAll, strmatch.Literal("DEF"))
	if err != nil {
		panic(err)
	}
	r.Before("XYZ")
	fmt.Println(r.Text())
	for _, o := range r.All() {
		fmt.Println(o.Start, o.End)
	}
	// Output:
	// ABCXYZDEFGHIXYZDEFJKL
	// 6 9
	// 15 18
}

func ExampleFindAll_fallback() {
	r, _ := strmatch.FindAll("ABCDEFGHIDEFGHIJKL", strmatch.FilterFirst,
		strmatch.Literals("XYZ", "DEF", "GHI")...)
	fmt.Println(r.Matches())
	// Output:
	// [DEF DEF]
}

func ExampleResult_Replace() {
	r, _ := strmatch.FindAll("your dad smells like a woman", strmatch.FilterAll,
		strmatch.RegExp{Source: `\w+`, Flags: "g"})
	fmt.Println(r.Replace("lol").Text())
	fmt.Println(r.Offsets()[5])
	// Output:
	// lol lol lol lol lol lol
	// [20,23) "/\\w+/g"
}

func ExampleSearcher() {
	s, _ := strmatch.Compile(strmatch.RegExp{Source: `\d+`})
	for _, text := range []string{"a1b22", "none"} {
		r := s.FindAll(text, strmatch.FilterAll)
		fmt.Printf("%q: %d match(es)\n", text, r.Count())
	}
	// Output:
	// "a1b22": 2 match(es)
	// "none": 0 match(es)
}
