package migrate

// migrations are run in order, lowest version first.
var migrations = []Migration{
	createTables,
}
