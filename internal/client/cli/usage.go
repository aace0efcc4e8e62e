package cli

import "fmt"

func PrintUsage() {
	fmt.Println("Usage: marknote [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register       Create a new account")
	fmt.Println("  login          Authenticate and store the session")
	fmt.Println("  logout         Clear the stored session")
	fmt.Println("  status         Show the current session")
	fmt.Println("  list           List your notes")
	fmt.Println("  get <id>       Print a note's markdown")
	fmt.Println("  view <id>      Render a note's markdown as HTML")
	fmt.Println("  create         Write a new note")
	fmt.Println("  edit <id>      Edit a note interactively (auto-saves)")
	fmt.Println("  delete <id>    Delete a note")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --server <url>  Server URL (default http://localhost:8080)")
	fmt.Println("  --db <path>     Path to local session database")
	fmt.Println("  --version       Show version information")
}
