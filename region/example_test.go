package region_test

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joshuapare/fileregion/region"
)

func Example() {
	f, err := region.CreateTemp("", "example-*.bin")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.Write([]byte("Hello, FileRegion.")); err != nil {
		log.Fatal(err)
	}

	win, err := region.NewValidated(f, region.Range{Start: 7, End: 16})
	if err != nil {
		log.Fatal(err)
	}

	buf := make([]byte, 16)
	n, err := win.Read(0, buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%q\n", buf[:n])

	if _, err := win.Write(0, []byte("01234")); err != nil {
		log.Fatal(err)
	}
	_, err = win.Write(5, []byte("too long"))
	fmt.Println(errors.Is(err, region.EndOutOfBounds))

	whole, err := region.Span(f)
	if err != nil {
		log.Fatal(err)
	}
	all := make([]byte, whole.Len())
	n, err = whole.Read(0, all)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", all[:n])

	// Output:
	// "FileRegio"
	// true
	// Hello, 01234egion.
}

func ExampleRegion_Subregion() {
	f, err := region.CreateTemp("", "example-*.bin")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	parent := region.New(f, region.Range{Start: 100, End: 2100})
	child, err := parent.Subregion(region.Range{Start: 200, End: 600})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(child.Range())

	_, err = parent.Subregion(region.Range{Start: 0, End: 2001})
	fmt.Println(err)

	// Output:
	// [300, 700)
	// region: subregion: end out of bounds: [100, 2101) exceeds bound 2100
}
