package view

type MinioStorageCreds struct {
	BucketName      string
	IsActive        bool
	Endpoint        string
	Crt             string
	AccessKeyId     string
	SecretAccessKey string
}

const WORLD_FILES_PREFIX = "world/"
