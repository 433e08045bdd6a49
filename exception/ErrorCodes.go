package exception

const IncorrectParamType = "2"
const IncorrectParamTypeMsg = "$param parameter should be $type"

const InvalidParameterValue = "3"
const InvalidParameterValueMsg = "Value '$value' is not allowed for parameter $param"

const BadRequestBody = "4"
const BadRequestBodyMsg = "Failed to decode body"

const ValidationFailed = "6"
const ValidationFailedMsg = "Validation failed: $errors"

const PackageNotFound = "10"
const PackageNotFoundMsg = "Package $category/$package not found"

const CategoryNotFound = "11"
const CategoryNotFoundMsg = "Category $category not found"

const HerdNotFound = "12"
const HerdNotFoundMsg = "Herd $herd not found"

const MaintainerNotFound = "13"
const MaintainerNotFoundMsg = "Maintainer with id $maintainerId not found"

const OverlayNotFound = "14"
const OverlayNotFoundMsg = "Overlay $overlay not found"

const UnknownFavoriteKind = "15"
const UnknownFavoriteKindMsg = "Unknown favourite kind $kind"

const UserNotFound = "20"
const UserNotFoundMsg = "User $userId not found"

const InvalidCredentials = "21"
const InvalidCredentialsMsg = "Invalid username or password"

const UserAlreadyExists = "22"
const UserAlreadyExistsMsg = "User with name $name already exists"

const WorldScanEmpty = "30"
const WorldScanEmptyMsg = "Neither 'packages' nor 'world' was provided"

const WorldFileTooLarge = "31"
const WorldFileTooLargeMsg = "World file exceeds the allowed size of $maxSize bytes"

const WorldScanTooManyEntries = "32"
const WorldScanTooManyEntriesMsg = "World scan accepts at most $maxEntries entries"

const UnsupportedFeedFormat = "40"
const UnsupportedFeedFormatMsg = "Feed format $format is not supported"

const StorageDisabled = "50"
const StorageDisabledMsg = "Object storage is not enabled"
