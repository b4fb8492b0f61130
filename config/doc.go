// Package config loads model and solver settings from HCL files.
//
// A configuration file holds one required model block and optional solver,
// logging and store blocks:
//
//	model {
//	  alpha      = 0.4
//	  beta       = 0.95
//	  delta      = 0.1
//	  sigma      = 2
//	  num_states = 200
//	  dev        = 0.2     # optional, 0.2 when omitted
//	}
//
//	solver {
//	  algorithm          = "policy"   # "value" | "policy" | "modified"
//	  crit               = 1e-6       # optional
//	  k                  = 30         # optional
//	  max_iter           = 500        # optional
//	  seed               = 3000       # optional
//	  infeasible_as_zero = false      # optional
//	}
//
//	logging {
//	  level  = "debug"   # debug | info | warn | error
//	  format = "json"    # json | text
//	}
//
//	store {
//	  kind = "sqlite"    # memory | sqlite
//	  path = "runs.db"
//	}
//
// Omitted optional attributes take the defaults of growth.DefaultParams and
// ddp.DefaultOptions. The decoded values are validated before Load returns.
package config
