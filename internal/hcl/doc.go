// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses a speccheck.hcl file, evaluates it against a small
// evaluation context and translates the decoded schema into config.Model.
//
// A configuration file looks like:
//
//	corpus {
//	  root    = "${config_dir}/spec"
//	  workers = 4
//	}
//
//	code {
//	  enabled = true
//	  command = [env("TSC", "tsc"), "--lib", "es6", "--downlevelIteration"]
//	}
package hcl
