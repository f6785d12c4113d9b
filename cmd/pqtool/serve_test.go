// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"

	"cloudeng.io/pqueue/pqhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- runServe(ctx, "127.0.0.1:0", func(a net.Addr) { addrCh <- a })
	}()
	var url string
	select {
	case a := <-addrCh:
		url = "http://" + a.String()
	case err := <-errCh:
		t.Fatal(err)
	}

	resp, err := http.Post(url+"/items", "application/json", strings.NewReader(`{"value": "a", "priority": 1}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(url + "/peek")
	require.NoError(t, err)
	var entry pqhttp.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	resp.Body.Close()
	assert.Equal(t, pqhttp.Entry{Value: "a", Priority: 1}, entry)

	cancel()
	require.NoError(t, <-errCh)
}
