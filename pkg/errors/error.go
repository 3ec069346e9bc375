package errors

import (
	stderrors "errors"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// ConfigLoadError represents a failure to load listing, venue or price seed configuration.
	ConfigLoadError ErrorCode = "config_load_error"
	// ConfigNotFoundError represents a missing listing, venue or price seed.
	ConfigNotFoundError ErrorCode = "config_not_found_error"

	// MarketDataError represents a failure of the market data provider.
	MarketDataError ErrorCode = "market_data_error"
	// MarketDataDecodeError represents an order book snapshot that could not be decoded.
	MarketDataDecodeError ErrorCode = "market_data_decode_error"

	// RegistryLookupError represents a failure to look up a resting order by owner.
	RegistryLookupError ErrorCode = "registry_lookup_error"
	// RegistryMutationError represents a registry add/update/remove that reported failure
	// after a successful lookup. It always indicates a broken invariant.
	RegistryMutationError ErrorCode = "registry_mutation_error"
	// RegistryOwnerTakenError represents an add for an owner that already has a resting order.
	RegistryOwnerTakenError ErrorCode = "registry_owner_taken_error"
	// RegistryOrderNotFoundError represents an update or removal for an owner without an order.
	RegistryOrderNotFoundError ErrorCode = "registry_order_not_found_error"

	// InvalidEventError represents an event that cannot be mapped to a side.
	InvalidEventError ErrorCode = "invalid_event_error"

	// PublishError represents a failure to hand a generated message to the transport.
	PublishError ErrorCode = "publish_error"
	// EncodeError represents a failure to encode a generated message.
	EncodeError ErrorCode = "encode_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisHGetError represents an error when getting a field from a hash in Redis.
	RedisHGetError ErrorCode = "redis_hget_error"
	// RedisHSetError represents an error when setting fields in a hash in Redis.
	RedisHSetError ErrorCode = "redis_hset_error"
	// RedisHSetNXError represents an error when setting a hash field with HSetNX.
	RedisHSetNXError ErrorCode = "redis_hsetnx_error"
	// RedisHDelError represents an error when deleting fields from a hash in Redis.
	RedisHDelError ErrorCode = "redis_hdel_error"
)

// CodeOf returns the outermost code carried by err or by any error it wraps.
// Errors without a code report GeneralInternalServerError.
func CodeOf(err error) ErrorCode {
	for err != nil {
		switch e := err.(type) {
		case *ErrorDetails:
			return ErrorCode(e.Code)
		case *ErrorTracer:
			if e.Code != "" {
				return e.Code
			}
		}
		err = stderrors.Unwrap(err)
	}
	return GeneralInternalServerError
}

// HasCode reports whether err, or any error it wraps, carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		switch e := err.(type) {
		case *ErrorDetails:
			if e.Code == string(code) {
				return true
			}
		case *ErrorTracer:
			if e.Code == code {
				return true
			}
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
