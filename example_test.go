package datafile_test

import (
	"fmt"
	"os"

	"github.com/0xalexb/datafile"
	"github.com/0xalexb/datafile/storage/memory"
)

// Example demonstrates the full edit cycle: load a hand-written file, read
// and change values, and save it back with comments and order intact.
func Example() {
	store := memory.New()
	_ = store.WriteLines("app.ini", []string{
		"; application settings",
		"[net]",
		"host=localhost",
		"; pick a free one",
		"port=8080",
	})

	f := datafile.New(datafile.WithStorage(store))
	if err := f.Load("app.ini"); err != nil {
		fmt.Println("load:", err)

		return
	}

	fmt.Println("port:", f.GetInt("port", "net"))

	if err := f.SetInt("port", 9090, "", "net"); err != nil {
		fmt.Println("set:", err)

		return
	}

	if err := f.Save(); err != nil {
		fmt.Println("save:", err)

		return
	}

	lines, _ := store.ReadLines("app.ini")
	for _, line := range lines {
		fmt.Println(line)
	}
	// Output:
	// port: 8080
	// ; application settings
	// [net]
	// host=localhost
	// ; pick a free one
	// port=9090
}

// ExampleParse shows parsing in-memory text. Lookups are case-insensitive
// and keys before the first header land in the global section, addressed by
// the empty name.
func ExampleParse() {
	f := datafile.Parse([]byte("greeting=hello\n[User]\nName=alice\n"))

	fmt.Println(f.GetString("greeting", ""))
	fmt.Println(f.GetString("name", "user"))
	fmt.Println(f.SectionCount(), f.KeyCount())
	// Output:
	// hello
	// alice
	// 2 2
}

// ExampleFile_WriteTo serializes a programmatically built document without
// involving a file name or the dirty flag.
func ExampleFile_WriteTo() {
	f := datafile.New(datafile.WithStorage(memory.New()))
	f.CreateSectionWithKeys("db", "storage backend", []datafile.Key{
		{Name: "dsn", Value: "postgres://localhost/app"},
		{Name: "pool", Value: "10", Comment: "connections"},
	})

	_, _ = f.WriteTo(os.Stdout)
	// Output:
	// ; storage backend
	// [db]
	// dsn=postgres://localhost/app
	// ; connections
	// pool=10
}

// ExampleFile_SetString_autocreateDisabled shows the autocreate options
// turning silent creation into explicit errors.
func ExampleFile_SetString_autocreateDisabled() {
	f := datafile.Parse([]byte("[net]\nport=8080\n"),
		datafile.WithAutoCreateSections(false),
		datafile.WithAutoCreateKeys(false),
	)

	err := f.SetString("port", "9090", "", "net")
	fmt.Println("existing key:", err)

	err = f.SetString("host", "localhost", "", "net")
	fmt.Println("missing key:", err)
	// Output:
	// existing key: <nil>
	// missing key: setting key "host" in section "net": key not found
}
