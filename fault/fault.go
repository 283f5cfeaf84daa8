// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// marketplace failure classes
type UnauthorisedError GenericError
type AssetUnavailableError GenericError
type DuplicateListingError GenericError
type InsufficientBalanceError GenericError
type SelfPurchaseError GenericError
type InvalidPriceError GenericError
type InvalidInputError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrBalanceOverflow           = ProcessError("balance overflow")
	ErrCertificateFileExists     = ExistsError("certificate file already exists")
	ErrDatabaseVersionMismatch   = InvalidError("database version mismatch")
	ErrIdentityFileExists        = ExistsError("identity file already exists")
	ErrInvalidChain              = InvalidError("invalid chain")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidIPAddress          = InvalidError("invalid IP address")
	ErrInvalidKeyLength          = InvalidError("invalid key length")
	ErrInvalidKeyType            = InvalidError("invalid key type")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrChecksumMismatch          = ProcessError("checksum mismatch")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrCannotDecodeAccount       = ProcessError("cannot decode account")
	ErrCannotDecodePrivateKey    = ProcessError("cannot decode private key")
	ErrMissingParameters         = InvalidError("missing parameters")
	ErrNotAvailableDuringStartup = ProcessError("not available during startup")
	ErrNotAvailableReadOnly      = ProcessError("not available in read-only mode")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrNotPrivateKey             = InvalidError("not a private key")
	ErrNotPublicKey              = InvalidError("not a public key")
	ErrNotRecordPack             = ProcessError("not a record pack")
	ErrOwnerCannotChange         = InvalidError("protocol owner cannot change")
	ErrRateLimiting              = ProcessError("rate limiting")
	ErrRequestBeforeStart        = InvalidError("request signed before server start")
	ErrRequestReplayed           = InvalidError("request already seen")
	ErrRequestExpired            = InvalidError("request timestamp outside window")
	ErrTransactionFinished       = ProcessError("transaction already finished")
)

// marketplace errors - grouped by class
var (
	ErrInvalidSignature   = UnauthorisedError("invalid signature")
	ErrMissingIdentity    = UnauthorisedError("caller identity is required")
	ErrNotAssetCreator    = UnauthorisedError("caller is not the asset creator")
	ErrNotProtocolOwner   = UnauthorisedError("caller is not the protocol owner")
	ErrNotPurchased       = UnauthorisedError("no purchase recorded for this asset")
	ErrWrongNetworkForKey = UnauthorisedError("wrong network for public key")

	ErrAssetNotFound      = AssetUnavailableError("asset not found")
	ErrAssetDelisted      = AssetUnavailableError("asset is not available")
	ErrCredentialNotFound = AssetUnavailableError("credential not found")

	ErrAssetIdentifierInUse = DuplicateListingError("asset identifier already in use")

	ErrInsufficientBalance = InsufficientBalanceError("insufficient balance")

	ErrSelfPurchase = SelfPurchaseError("creator cannot purchase own asset")

	ErrPriceIsZero        = InvalidPriceError("price must be greater than zero")
	ErrFeeRateOutOfRange  = InvalidPriceError("fee rate out of range")
	ErrStaleAssetId       = InvalidInputError("asset identifier is not yet allocated")
	ErrCategoryLength     = InvalidInputError("category length is invalid")
	ErrDescriptionLength  = InvalidInputError("description length is invalid")
	ErrTokenLength        = InvalidInputError("encrypted token length is invalid")
	ErrTextNotUTF8        = InvalidInputError("text is not valid UTF-8")
	ErrTokenNotPrintable  = InvalidInputError("encrypted token must be printable ASCII")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string              { return string(e) }
func (e InvalidError) Error() string             { return string(e) }
func (e NotFoundError) Error() string            { return string(e) }
func (e ProcessError) Error() string             { return string(e) }
func (e UnauthorisedError) Error() string        { return string(e) }
func (e AssetUnavailableError) Error() string    { return string(e) }
func (e DuplicateListingError) Error() string    { return string(e) }
func (e InsufficientBalanceError) Error() string { return string(e) }
func (e SelfPurchaseError) Error() string        { return string(e) }
func (e InvalidPriceError) Error() string        { return string(e) }
func (e InvalidInputError) Error() string        { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool              { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool             { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool            { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool             { _, ok := e.(ProcessError); return ok }
func IsErrUnauthorised(e error) bool        { _, ok := e.(UnauthorisedError); return ok }
func IsErrAssetUnavailable(e error) bool    { _, ok := e.(AssetUnavailableError); return ok }
func IsErrDuplicateListing(e error) bool    { _, ok := e.(DuplicateListingError); return ok }
func IsErrInsufficientBalance(e error) bool { _, ok := e.(InsufficientBalanceError); return ok }
func IsErrSelfPurchase(e error) bool        { _, ok := e.(SelfPurchaseError); return ok }
func IsErrInvalidPrice(e error) bool        { _, ok := e.(InvalidPriceError); return ok }
func IsErrInvalidInput(e error) bool        { _, ok := e.(InvalidInputError); return ok }
