/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package game

import "errors"

var (
	ErrEmptyPool        = errors.New("no characters match the selected appearances")
	ErrNotActive        = errors.New("no game in progress")
	ErrNoHints          = errors.New("no hints left for this character")
	ErrUnknownCharacter = errors.New("no character by that name in the current pool")
)
