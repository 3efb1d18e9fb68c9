package constants

const MAINNET_API_URL = "https://bittrex.com/api/v1.1"

// Query parameter and header names that make up the v1.1 signing scheme
const (
	API_KEY_PARAM    = "apikey"
	NONCE_PARAM      = "nonce"
	API_SIGN_HEADER  = "apisign"
	CREDENTIALS_PATH = "Software/Bittrex"
	API_KEY_NAME     = "ApiKey"
	API_SECRET_NAME  = "ApiSecret"
)

// Environment variables read by credentials.EnvSource
const (
	API_KEY_ENV    = "BITTREX_API_KEY"
	API_SECRET_ENV = "BITTREX_API_SECRET"
)

const (
	PUBLIC_MARKETS_PATH   = "/public/getmarkets"
	ACCOUNT_BALANCES_PATH = "/account/getbalances"
)
