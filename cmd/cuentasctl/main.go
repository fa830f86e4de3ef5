// Command cuentasctl is the operations CLI: schema migrations, seeding the
// first admin user and printing balance tables.
package main

func main() {
	Execute()
}
