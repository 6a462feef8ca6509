package config

// ConfigPathEnvFile is the optional dotenv file read before parsing the environment
const ConfigPathEnvFile = ".env"
