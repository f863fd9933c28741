package document

const documentTemplate = `# {{.SystemName}} - System Architecture Document

## Executive Summary

{{.Purpose}}

This document outlines the comprehensive architecture for {{.SystemName}}, designed to support {{.TargetUsers}} with high performance, security, and scalability requirements.

## System Overview

### Purpose
{{.Purpose}}

### Key Features
{{.Features}}

### Target Scale
- **Users**: {{.TargetUsers}}
- **Performance Requirements**: {{.PerformanceSummary}}

## Component Breakdown

### Frontend Layer
**Technology**: {{.Frontend}}
- User interface components
- Client-side routing and state management
- Responsive design for multiple devices
- Progressive web app capabilities

### Backend Layer
**Technology**: {{.Backend}}
- REST/GraphQL API endpoints
- Business logic implementation
- Authentication and authorization
- Data validation and processing

### Database Layer
**Technology**: {{.Database}}
- Primary data storage
- Caching layer for performance
- Database indexing strategy
- Backup and recovery mechanisms

### Infrastructure
**Technology**: {{.Infrastructure}}
- Container orchestration
- Load balancing
- Auto-scaling configuration
- Monitoring and logging

## Data Flow Description

1. **User Request**: Client applications send requests to the API gateway
2. **Authentication**: Request validation and user authentication
3. **Business Logic**: Backend services process the request
4. **Data Access**: Database operations for data retrieval/storage
5. **Response**: Formatted response returned to client

## Technology Stack Details

| Layer | Technology | Purpose |
|-------|------------|---------|
| Frontend | {{.StackFrontend}} | User interface |
| Backend | {{.StackBackend}} | API and business logic |
| Database | {{.StackDatabase}} | Data persistence |
| Infrastructure | {{.StackInfrastructure}} | Hosting and deployment |

## Security Considerations

{{.Security}}

## Scalability Approach

### Horizontal Scaling
- Microservices architecture for independent scaling
- Load balancers to distribute traffic
- Database sharding and read replicas
- Content delivery network (CDN) for static assets

### Vertical Scaling
- Resource monitoring and auto-scaling
- Performance optimization at code level
- Database query optimization
- Caching strategies for frequently accessed data

## Integration Points

{{.Integrations}}

## Deployment Strategy

### Containerization
- Docker containers for consistent deployment
- Kubernetes for orchestration
- CI/CD pipeline for automated deployment
- Blue-green deployment for zero-downtime updates

### Monitoring and Observability
- Application performance monitoring (APM)
- Centralized logging system
- Health checks and alerting
- Performance metrics and dashboards

## Performance Optimization Strategies

{{.Performance}}

## Backup and Disaster Recovery

- Automated daily backups
- Point-in-time recovery capabilities
- Multi-region deployment for high availability
- Disaster recovery testing procedures

## Technical Constraints

{{.Constraints}}

## Additional Context

{{.AdditionalContext}}

---

*This document was generated using ArchitectureGen - System Architecture Generator*
`

// Canned bullet lists used when the matching list field is empty.
const (
	defaultSecurity = `- Authentication and authorization mechanisms
- Data encryption at rest and in transit
- Input validation and sanitization
- Regular security audits and penetration testing
- Compliance with industry standards (GDPR, HIPAA, etc.)`

	defaultIntegrations = `- Third-party API integrations
- External service connections
- Data synchronization mechanisms
- Event-driven architecture for loose coupling`

	defaultPerformance = `- Database connection pooling
- Caching at multiple layers
- Asynchronous processing for heavy operations
- Image and asset optimization`

	defaultConstraints = `- Budget considerations
- Legacy system compatibility
- Compliance requirements
- Performance limitations`
)

// Placeholders for empty technology and context fields.
const (
	FallbackFrontend          = "Modern web framework"
	FallbackBackend           = "Server-side framework"
	FallbackDatabase          = "Relational/NoSQL database"
	FallbackInfrastructure    = "Cloud infrastructure"
	FallbackStackEntry        = "TBD"
	FallbackAdditionalContext = "No additional context provided."
)
