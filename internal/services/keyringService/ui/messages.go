package ui

import keyringservice "github.com/entrpixx/esk/internal/services/keyringService"

type keysLoadedMsg struct {
	keys         []keyringservice.Key
	fingerprints map[string]string
}

type publicKeyMsg struct {
	name    string
	content string
}
