package main

import "github.com/shivamudipelly/aora/storage/database"

func (cli *commandLine) migrate() error {
	return database.Migrate(cli.db, cli.conf)
}
