// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the graphkit command.
//
//	layout:
//	  method: multilevel      # or "force"
//	  spring_length: 1
//	  cutoff: 0               # 0 disables the repulsion radius
//	  tolerance: 0.01
//	  adaptive: true
//	  repulsion: 1
//	  max_iterations: 10000
//	  dimension: 2
//	  seed: 1
//	store:
//	  path: graphs.db
//	  bucket: graphs
//	  timeout: 1s
//	log:
//	  level: info
//	  format: text            # or "json"
//
// Keys that are absent keep the values of Default; unknown keys are errors.
package config
