// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth covers the identity boundary: password hashing and session
tokens.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(req.Password)
	...
	err = auth.CheckPassword(user.PasswordHash, req.Password)

CheckPassword returns ErrInvalidCredentials on mismatch.

# Session Tokens

Sessions are stateless HS256 JWTs with the user id as subject:

	token, err := auth.NewToken(user.ID, cfg.TokenSecret)
	userID, err := auth.ParseToken(token, cfg.TokenSecret)

Tokens expire after TokenTTL. Any validation failure - expiry, bad
signature, malformed input - is ErrInvalidToken; callers treat them all
as "signed out".
*/
package auth
