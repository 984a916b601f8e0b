package version

// ServiceAppVersion 对外暴露的服务版本号
const ServiceAppVersion = 1.0
