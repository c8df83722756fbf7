// Copyright 2026 The PYroMat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the substance database loader
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/kyleniemeyer/PYroMat/mdl/gas"
)

// DB implements a database of substances
type DB struct {

	// input
	Substances []*gas.Data `json:"substances"` // all substance records

	// derived
	Models map[string]gas.Model // models ready for evaluation, keyed by substance id
}

// ReadSub reads all substance records from a JSON file and allocates their
// models through the class registry
func ReadSub(dir, fn string) (db *DB, err error) {
	db = new(DB)
	db.Models = make(map[string]gas.Model)
	err = db.readFile(dir, fn)
	return
}

// LoadDir reads every *.json file under dir into one database
func LoadDir(dir string) (db *DB, err error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, chk.Err("no substance data files found in %q", dir)
	}
	sort.Strings(matches)
	db = new(DB)
	db.Models = make(map[string]gas.Model)
	for _, path := range matches {
		d, f := filepath.Split(path)
		if err = db.readFile(d, f); err != nil {
			return nil, err
		}
	}
	return
}

// Get returns the model for one substance
func (o *DB) Get(id string) (gas.Model, error) {
	m, ok := o.Models[id]
	if !ok {
		return nil, chk.Err("substance %q is not in the database", id)
	}
	return m, nil
}

// readFile reads one data file and merges its records into the database
func (o *DB) readFile(dir, fn string) error {

	// read and decode
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return err
	}
	var raw DB
	if err := json.Unmarshal(b, &raw); err != nil {
		return chk.Err("cannot decode substance data file %q: %v", fn, err)
	}

	// check records and allocate models
	for _, sub := range raw.Substances {
		if err := sub.Check(); err != nil {
			return err
		}
		if _, ok := o.Models[sub.ID]; ok {
			return chk.Err("substance %q is defined more than once", sub.ID)
		}
		model, err := gas.New(sub.Class)
		if err != nil {
			return err
		}
		if err := model.Init(sub); err != nil {
			return err
		}
		sub.FromFile = fn
		o.Substances = append(o.Substances, sub)
		o.Models[sub.ID] = model
	}
	return nil
}
