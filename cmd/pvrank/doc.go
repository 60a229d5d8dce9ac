// Command pvrank fetches PvPoke ranking data and reshapes it into the
// name and family lookup tables consumed by the Shortcuts automation.
//
// Subcommands:
//
//	sync      download pokemon.json and the four rankings files
//	prepare   build and persist the lookup tables
//	lookup    print the family ranking block for one species
//	demo      prepare, then look up a few well known species
//	families  summarize the prepared families
//	history   list recorded prepare runs
//	config    create or validate the configuration file
package main
